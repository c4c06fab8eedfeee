package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Tomas-vilte/VidCommit/internal/cli/command/analyze"
	"github.com/Tomas-vilte/VidCommit/internal/cli/command/configcmd"
	"github.com/Tomas-vilte/VidCommit/internal/cli/command/dashboard"
	"github.com/Tomas-vilte/VidCommit/internal/cli/command/extract"
	"github.com/Tomas-vilte/VidCommit/internal/cli/command/videos"
	cliregistry "github.com/Tomas-vilte/VidCommit/internal/cli/registry"
	cfg "github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/registry"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/Tomas-vilte/VidCommit/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("could not load translations: %w", err)
	}

	classifiers := registry.NewDefaultRegistry()

	registerCommand := cliregistry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("analyze", analyze.NewAnalyzeCommandFactory(classifiers)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("videos", videos.NewVideosCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("extract", extract.NewExtractCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("dashboard", dashboard.NewDashboardCommandFactory(classifiers)); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory(classifiers)); err != nil {
		return nil, nil, err
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	versionCommand := &cli.Command{
		Name:  "version",
		Usage: translations.GetMessage("version_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Writer, "vidcommit %s\n", version.FullVersion())
			return nil
		},
	}
	commands = append(commands, helpCommand, versionCommand)

	return &cli.Command{
		Name:        "vidcommit",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable info logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging with source locations",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
