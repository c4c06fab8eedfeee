package analyze

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/domain/ports"
	"github.com/Tomas-vilte/VidCommit/internal/extractor"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/registry"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/youtube"
	"github.com/Tomas-vilte/VidCommit/internal/pipeline"
	"github.com/Tomas-vilte/VidCommit/internal/stats"
	"github.com/Tomas-vilte/VidCommit/internal/ui"
	"github.com/urfave/cli/v3"
)

// AnalyzeCommandFactory builds the end-to-end analysis command: fetch the
// channel, pick a video, extract its commits and print the classified batch.
type AnalyzeCommandFactory struct {
	classifiers *registry.ClassifierRegistry
}

func NewAnalyzeCommandFactory(classifiers *registry.ClassifierRegistry) *AnalyzeCommandFactory {
	return &AnalyzeCommandFactory{classifiers: classifiers}
}

func (f *AnalyzeCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   t.GetMessage("analyze.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "channel",
				Aliases:  []string{"c"},
				Usage:    t.GetMessage("analyze.flag_channel", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "video",
				Aliases: []string{"v"},
				Usage:   t.GetMessage("analyze.flag_video", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return f.run(ctx, t, cfg, cmd.String("channel"), cmd.String("video"))
		},
	}
}

func (f *AnalyzeCommandFactory) run(ctx context.Context, t *i18n.Translations, cfg *config.Config, channelURL, videoID string) error {
	lister, classifier, err := f.buildPorts(ctx, cfg)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	orchestrator := pipeline.NewOrchestrator(lister, classifier)

	var state pipeline.State
	err = ui.WithSpinner(t.GetMessage("analyze.fetching", 0, nil), func() error {
		state = orchestrator.FetchVideos(ctx, channelURL)
		if state.HasError() {
			return errors.New(state.Error)
		}
		return nil
	})
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	video, err := pickVideo(state.Videos, videoID, t)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	state = orchestrator.SelectVideo(video)
	ui.PrintKeyValue(t.GetMessage("analyze.selected_video", 0, nil), video.Title)

	err = ui.WithSpinner(t.GetMessage("analyze.classifying", len(state.Commits), map[string]interface{}{
		"Count": len(state.Commits),
	}), func() error {
		state = orchestrator.AnalyzeCommits(ctx)
		if state.HasError() {
			return errors.New(state.Error)
		}
		return nil
	})
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	return printAnalysis(t, state.AnalysisResults)
}

func (f *AnalyzeCommandFactory) buildPorts(ctx context.Context, cfg *config.Config) (ports.VideoLister, ports.CommitClassifier, error) {
	lister, err := youtube.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	factory, err := f.classifiers.Get(cfg.ActiveClassifier)
	if err != nil {
		return nil, nil, err
	}
	classifier, err := factory.CreateClassifier(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return lister, classifier, nil
}

// pickVideo returns the requested video, or the newest one with extractable
// commits when no ID was given.
func pickVideo(videos []models.Video, videoID string, t *i18n.Translations) (models.Video, error) {
	if videoID != "" {
		for _, v := range videos {
			if v.ID == videoID {
				return v, nil
			}
		}
		return models.Video{}, fmt.Errorf("video '%s' not found in the fetched uploads", videoID)
	}

	for _, v := range videos {
		if len(extractor.Extract(v.Description)) > 0 {
			return v, nil
		}
	}
	return models.Video{}, errors.New(t.GetMessage("analyze.no_extractable", 0, nil))
}

func printAnalysis(t *i18n.Translations, results []models.ClassifiedCommit) error {
	summary, err := stats.Summarize(results)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	ui.PrintSectionBanner(t.GetMessage("analyze.summary_title", 0, nil))
	ui.PrintInfo(t.GetMessage("analyze.commit_count", summary.Count, map[string]interface{}{
		"Count": summary.Count,
	}))

	fmt.Println()
	ui.PrintInfo(t.GetMessage("analyze.sentiment_title", 0, nil))
	for _, label := range models.SentimentLabels() {
		count := summary.SentimentDistribution[label]
		ui.PrintKeyValue(string(label), fmt.Sprintf("%d (%.0f%%)", count, stats.Percentage(count, summary.Count)))
	}

	fmt.Println()
	ui.PrintInfo(t.GetMessage("analyze.type_title", 0, nil))
	for _, ct := range models.CommitTypes() {
		count := summary.TypeDistribution[ct]
		if count == 0 {
			continue
		}
		ui.PrintKeyValue(string(ct), fmt.Sprintf("%d (%.0f%%)", count, stats.Percentage(count, summary.Count)))
	}

	fmt.Println()
	ui.PrintKeyValue(t.GetMessage("analyze.avg_quality", 0, nil), fmt.Sprintf("%.2f", summary.AverageQualityScore))
	ui.PrintKeyValue(t.GetMessage("analyze.avg_sentiment", 0, nil), fmt.Sprintf("%.2f", summary.AverageSentimentScore))

	return nil
}
