package configcmd

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config.set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			lang := cmd.String("lang")
			if lang != "en" && lang != "es" {
				return fmt.Errorf("unsupported language '%s', valid options: en, es", lang)
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(cmd.Writer, t.GetMessage("config.lang_updated", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}
