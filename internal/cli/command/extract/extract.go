package extract

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/extractor"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

// ExtractCommandFactory builds the offline extraction command: run the line
// classifier over a description without touching any network service.
type ExtractCommandFactory struct{}

func NewExtractCommandFactory() *ExtractCommandFactory {
	return &ExtractCommandFactory{}
}

func (f *ExtractCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   t.GetMessage("extract.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("extract.flag_file", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			description, err := readDescription(cmd.String("file"), cmd.Reader)
			if err != nil {
				return err
			}

			commits := extractor.Extract(description)
			if len(commits) == 0 {
				ui.PrintWarning(t.GetMessage("extract.none_found", 0, nil))
				return nil
			}

			for _, commit := range commits {
				fmt.Fprintln(cmd.Writer, commit)
			}
			ui.PrintSuccess(cmd.Writer, t.GetMessage("extract.found", len(commits), map[string]interface{}{
				"Count": len(commits),
			}))
			return nil
		},
	}
}

func readDescription(path string, stdin io.Reader) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read description file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return string(data), nil
}
