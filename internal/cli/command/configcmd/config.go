package configcmd

import (
	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/registry"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory groups the configuration subcommands.
type ConfigCommandFactory struct {
	classifiers *registry.ClassifierRegistry
}

func NewConfigCommandFactory(classifiers *registry.ClassifierRegistry) *ConfigCommandFactory {
	return &ConfigCommandFactory{classifiers: classifiers}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t, cfg),
			f.newSetLangCommand(t, cfg),
			f.newSetYouTubeKeyCommand(t, cfg),
			f.newSetClassifierCommand(t, cfg),
			f.newSetGeminiKeyCommand(t, cfg),
			f.newSetAnalyzerURLCommand(t, cfg),
		},
	}
}
