package dashboard

import (
	"context"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/registry"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/youtube"
	"github.com/Tomas-vilte/VidCommit/internal/tui"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

// DashboardCommandFactory builds the interactive terminal dashboard command.
type DashboardCommandFactory struct {
	classifiers *registry.ClassifierRegistry
}

func NewDashboardCommandFactory(classifiers *registry.ClassifierRegistry) *DashboardCommandFactory {
	return &DashboardCommandFactory{classifiers: classifiers}
}

func (f *DashboardCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Aliases: []string{"d", "tui"},
		Usage:   t.GetMessage("dashboard.usage", 0, nil),
		Action: func(ctx context.Context, _ *cli.Command) error {
			lister, err := youtube.NewClient(ctx, cfg)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			factory, err := f.classifiers.Get(cfg.ActiveClassifier)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			classifier, err := factory.CreateClassifier(ctx, cfg)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			return tui.NewApp(lister, classifier).Run()
		},
	}
}
