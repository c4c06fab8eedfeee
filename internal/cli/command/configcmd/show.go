package configcmd

import (
	"context"
	"strconv"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(_ context.Context, _ *cli.Command) error {
			notSet := t.GetMessage("config.not_set", 0, nil)

			ui.PrintSectionBanner(t.GetMessage("config.current", 0, nil))
			ui.PrintKeyValue("language", cfg.Language)
			ui.PrintKeyValue("max_videos", strconv.Itoa(cfg.MaxVideos))
			ui.PrintKeyValue("classifier", cfg.ActiveClassifier)
			ui.PrintKeyValue("youtube_api_key", masked(cfg.YouTubeAPIKey, notSet))
			ui.PrintKeyValue("gemini_api_key", masked(cfg.Gemini.APIKey, notSet))
			ui.PrintKeyValue("gemini_model", cfg.Gemini.Model)
			ui.PrintKeyValue("analyzer_url", orDefault(cfg.Analyzer.BaseURL, notSet))
			ui.PrintKeyValue("huggingface_token", masked(cfg.HuggingFace.Token, notSet))
			ui.PrintKeyValue("config_file", cfg.PathFile)
			return nil
		},
	}
}

// masked hides everything but the last four characters of a secret.
func masked(secret, notSet string) string {
	if secret == "" {
		return notSet
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
