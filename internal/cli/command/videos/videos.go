package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/extractor"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/youtube"
	"github.com/Tomas-vilte/VidCommit/internal/pipeline"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

// VideosCommandFactory builds the channel listing command.
type VideosCommandFactory struct{}

func NewVideosCommandFactory() *VideosCommandFactory {
	return &VideosCommandFactory{}
}

func (f *VideosCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   t.GetMessage("videos.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "channel",
				Aliases:  []string{"c"},
				Usage:    t.GetMessage("analyze.flag_channel", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lister, err := youtube.NewClient(ctx, cfg)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			// a lister-only session still goes through the state machine so
			// the zero-videos rule stays in one place
			orchestrator := pipeline.NewOrchestrator(lister, nil)

			var state pipeline.State
			err = ui.WithSpinner(t.GetMessage("videos.fetching", 0, nil), func() error {
				state = orchestrator.FetchVideos(ctx, cmd.String("channel"))
				if state.HasError() {
					return errors.New(state.Error)
				}
				return nil
			})
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			for _, video := range state.Videos {
				commits := len(extractor.Extract(video.Description))
				detected := t.GetMessage("videos.commits_detected", commits, map[string]interface{}{
					"Count": commits,
				})
				fmt.Printf("%s  %s\n", ui.Accent.Sprint(video.ID), video.Title)
				ui.PrintKeyValue("published", video.PublishedAt)
				ui.PrintKeyValue("views", fmt.Sprintf("%d", video.ViewCount))
				ui.PrintKeyValue("commits", detected)
				fmt.Println()
			}
			return nil
		},
	}
}
