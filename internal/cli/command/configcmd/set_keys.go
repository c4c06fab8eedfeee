package configcmd

import (
	"context"
	"errors"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *ConfigCommandFactory) newSetYouTubeKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-youtube-key",
		Usage:     t.GetMessage("config.set_youtube_key_usage", 0, nil),
		ArgsUsage: "<api-key>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				return errors.New("an API key argument is required")
			}

			cfg.YouTubeAPIKey = key
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(cmd.Writer, t.GetMessage("config.key_updated", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetGeminiKeyCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-gemini-key",
		Usage:     t.GetMessage("config.set_gemini_key_usage", 0, nil),
		ArgsUsage: "<api-key>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				return errors.New("an API key argument is required")
			}

			cfg.Gemini.APIKey = key
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(cmd.Writer, t.GetMessage("config.gemini_key_updated", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetAnalyzerURLCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-analyzer-url",
		Usage:     t.GetMessage("config.set_analyzer_url_usage", 0, nil),
		ArgsUsage: "<base-url>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			baseURL := cmd.Args().First()
			if baseURL == "" {
				return errors.New("a base URL argument is required")
			}

			cfg.Analyzer.BaseURL = baseURL
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(cmd.Writer, t.GetMessage("config.analyzer_url_updated", 0, nil))
			return nil
		},
	}
}
