package configcmd

import (
	"context"
	"errors"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *ConfigCommandFactory) newSetClassifierCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-classifier",
		Usage:     t.GetMessage("config.set_classifier_usage", 0, nil),
		ArgsUsage: "<provider>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			provider := cmd.Args().First()
			if !f.classifiers.IsRegistered(provider) {
				return errors.New(t.GetMessage("config.invalid_classifier", 0, map[string]interface{}{
					"Provider": provider,
				}))
			}

			// the provider's own requirements are checked before switching,
			// so a saved config always points at a usable classifier
			factory, err := f.classifiers.Get(provider)
			if err != nil {
				return err
			}
			previous := cfg.ActiveClassifier
			cfg.ActiveClassifier = provider
			if err := factory.ValidateConfig(cfg); err != nil {
				cfg.ActiveClassifier = previous
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				cfg.ActiveClassifier = previous
				return err
			}

			ui.PrintSuccess(cmd.Writer, t.GetMessage("config.classifier_updated", 0, map[string]interface{}{
				"Provider": provider,
			}))
			return nil
		},
	}
}
