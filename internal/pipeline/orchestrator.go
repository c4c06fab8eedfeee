package pipeline

import (
	"context"
	"sync"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/domain/ports"
	"github.com/Tomas-vilte/VidCommit/internal/extractor"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
)

// Orchestrator drives one pipeline session over a single State value. Fetch
// and analysis are the only suspension points; every other transition is a
// synchronous Reduce call. Transitions are serialized under a mutex so the
// orchestrator is safe to drive from an event loop plus worker goroutines,
// and a trigger that arrives while a call is in flight is rejected without
// reaching the collaborator.
type Orchestrator struct {
	mu         sync.Mutex
	state      State
	lister     ports.VideoLister
	classifier ports.CommitClassifier
}

// NewOrchestrator creates a session in the initial state.
func NewOrchestrator(lister ports.VideoLister, classifier ports.CommitClassifier) *Orchestrator {
	return &Orchestrator{
		state:      NewState(),
		lister:     lister,
		classifier: classifier,
	}
}

// State returns the current pipeline state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) apply(action Action) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = Reduce(o.state, action)
	return o.state
}

// begin applies a start trigger and reports whether it was accepted. The
// reducer leaves the state unchanged for a trigger that arrives mid flight,
// so acceptance is the Loading flag flipping from false to true, never the
// flag's value after the reduce.
func (o *Orchestrator) begin(action Action) (State, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	prev := o.state
	o.state = Reduce(prev, action)
	return o.state, !prev.Loading && o.state.Loading
}

// FetchVideos validates the URL, calls the video lister and resolves the
// result into the state. The state is returned after resolution; on failure
// the stage does not move and Error carries the message.
func (o *Orchestrator) FetchVideos(ctx context.Context, channelURL string) State {
	state, accepted := o.begin(FetchStarted{URL: channelURL})
	if !accepted {
		// rejected locally: wrong stage, already in flight, or blank URL
		return state
	}

	videos, err := o.lister.ListVideos(ctx, channelURL)
	if err != nil {
		logger.Error(ctx, "fetching videos failed", err, "channel_url", channelURL)
		return o.apply(FetchFailed{Message: errorMessage(err, "Failed to fetch channel videos")})
	}

	logger.Debug(ctx, "videos fetched", "count", len(videos))
	return o.apply(VideosLoaded{Videos: videos})
}

// SelectVideo runs the commit extractor over the chosen video's description
// and moves to the commits stage. An empty extraction is a valid empty state,
// not an error.
func (o *Orchestrator) SelectVideo(video models.Video) State {
	commits := extractor.Extract(video.Description)
	return o.apply(VideoSelected{Video: video, Commits: commits})
}

// AnalyzeCommits submits the current commit list to the classifier. An empty
// list fails locally and never reaches the service.
func (o *Orchestrator) AnalyzeCommits(ctx context.Context) State {
	state, accepted := o.begin(AnalyzeStarted{})
	if !accepted {
		return state
	}

	results, err := o.classifier.ClassifyBatch(ctx, state.Commits)
	if err != nil {
		logger.Error(ctx, "commit analysis failed", err, "commits", len(state.Commits))
		return o.apply(AnalysisFailed{Message: errorMessage(err, "Commit analysis failed")})
	}

	return o.apply(AnalysisLoaded{Results: results})
}

// Back moves one stage back (full reset from analysis).
func (o *Orchestrator) Back() State {
	return o.apply(Back{})
}

// Reset returns the session to the initial state.
func (o *Orchestrator) Reset() State {
	return o.apply(Reset{})
}

func errorMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
