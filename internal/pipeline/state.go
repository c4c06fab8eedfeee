// Package pipeline owns the channel -> videos -> commits -> analysis flow as
// an explicit finite state machine: a single State record, a pure reducer for
// every synchronous transition, and an Orchestrator that adds the two
// network suspension points on top.
package pipeline

import "github.com/Tomas-vilte/VidCommit/internal/domain/models"

// Stage is one discrete state of the pipeline.
type Stage string

const (
	StageChannel  Stage = "channel"
	StageVideos   Stage = "videos"
	StageCommits  Stage = "commits"
	StageAnalysis Stage = "analysis"
)

// MsgNoVideosFound is the user-visible error for a channel with zero videos.
// Zero videos is an error by product decision; zero extracted commits is not.
const MsgNoVideosFound = "No videos found for this channel"

// MsgNoCommits is the local error for analyzing an empty commit list.
const MsgNoCommits = "No commits to analyze"

// MsgEmptyChannelURL is the local validation error for a blank channel URL.
const MsgEmptyChannelURL = "Channel URL is empty"

// State is the single record the whole pipeline mutates through Reduce.
// Exactly one Stage is active at a time.
type State struct {
	Stage           Stage
	ChannelURL      string
	Videos          []models.Video
	SelectedVideo   *models.Video
	Commits         []string
	AnalysisResults []models.ClassifiedCommit
	Error           string
	Loading         bool
}

// NewState returns the initial state: stage channel, everything empty.
func NewState() State {
	return State{
		Stage:           StageChannel,
		Videos:          []models.Video{},
		Commits:         []string{},
		AnalysisResults: []models.ClassifiedCommit{},
	}
}

// HasError reports whether the state carries a user-visible error.
func (s State) HasError() bool {
	return s.Error != ""
}

// EmptyCommits reports the distinct commits empty state: the stage is
// commits and extraction produced nothing. This is guidance territory, not an
// error.
func (s State) EmptyCommits() bool {
	return s.Stage == StageCommits && len(s.Commits) == 0
}
