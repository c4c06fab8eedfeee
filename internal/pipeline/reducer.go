package pipeline

import (
	"strings"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
)

// Action is a tagged transition request for the reducer.
type Action interface {
	isAction()
}

type (
	// FetchStarted asks to begin fetching videos for a channel URL.
	FetchStarted struct {
		URL string
	}

	// VideosLoaded resolves a fetch with the listed videos.
	VideosLoaded struct {
		Videos []models.Video
	}

	// FetchFailed resolves a fetch with an error message.
	FetchFailed struct {
		Message string
	}

	// VideoSelected picks one video and carries its extracted commits.
	VideoSelected struct {
		Video   models.Video
		Commits []string
	}

	// AnalyzeStarted asks to begin classifying the current commit list.
	AnalyzeStarted struct{}

	// AnalysisLoaded resolves an analysis with the classified records.
	AnalysisLoaded struct {
		Results []models.ClassifiedCommit
	}

	// AnalysisFailed resolves an analysis with an error message.
	AnalysisFailed struct {
		Message string
	}

	// Back moves exactly one stage back; from analysis it is a full reset.
	Back struct{}

	// Reset returns unconditionally to the initial state.
	Reset struct{}
)

func (FetchStarted) isAction()   {}
func (VideosLoaded) isAction()   {}
func (FetchFailed) isAction()    {}
func (VideoSelected) isAction()  {}
func (AnalyzeStarted) isAction() {}
func (AnalysisLoaded) isAction() {}
func (AnalysisFailed) isAction() {}
func (Back) isAction()           {}
func (Reset) isAction()          {}

// Reduce applies one action to a state and returns the next state. It is a
// pure function: no I/O, no mutation of the input. Actions that do not apply
// to the current stage, and triggers arriving while a call is in flight,
// leave the state unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case FetchStarted:
		if s.Stage != StageChannel || s.Loading {
			return s
		}
		if strings.TrimSpace(a.URL) == "" {
			s.Error = MsgEmptyChannelURL
			return s
		}
		s.ChannelURL = a.URL
		s.Error = ""
		s.Loading = true
		return s

	case VideosLoaded:
		if s.Stage != StageChannel || !s.Loading {
			return s
		}
		s.Loading = false
		if len(a.Videos) == 0 {
			s.Error = MsgNoVideosFound
			return s
		}
		s.Stage = StageVideos
		s.Videos = a.Videos
		s.Error = ""
		return s

	case FetchFailed:
		if s.Stage != StageChannel || !s.Loading {
			return s
		}
		s.Loading = false
		s.Error = a.Message
		return s

	case VideoSelected:
		if s.Stage != StageVideos || s.Loading {
			return s
		}
		video := a.Video
		s.Stage = StageCommits
		s.SelectedVideo = &video
		s.Commits = append([]string{}, a.Commits...)
		s.AnalysisResults = []models.ClassifiedCommit{}
		s.Error = ""
		return s

	case AnalyzeStarted:
		if s.Stage != StageCommits || s.Loading {
			return s
		}
		if len(s.Commits) == 0 {
			s.Error = MsgNoCommits
			return s
		}
		s.Error = ""
		s.Loading = true
		return s

	case AnalysisLoaded:
		if s.Stage != StageCommits || !s.Loading {
			return s
		}
		s.Loading = false
		s.Stage = StageAnalysis
		if a.Results == nil {
			// unexpected response shape coerced to an empty list
			s.AnalysisResults = []models.ClassifiedCommit{}
		} else {
			s.AnalysisResults = append([]models.ClassifiedCommit{}, a.Results...)
		}
		s.Error = ""
		return s

	case AnalysisFailed:
		if s.Stage != StageCommits || !s.Loading {
			return s
		}
		s.Loading = false
		s.Error = a.Message
		return s

	case Back:
		if s.Loading {
			return s
		}
		switch s.Stage {
		case StageVideos:
			next := NewState()
			next.ChannelURL = s.ChannelURL
			return next
		case StageCommits:
			s.Stage = StageVideos
			s.SelectedVideo = nil
			s.Commits = []string{}
			s.AnalysisResults = []models.ClassifiedCommit{}
			s.Error = ""
			return s
		case StageAnalysis:
			// intentional asymmetry: backing out of analysis resets the
			// whole pipeline instead of stepping to commits
			return NewState()
		}
		return s

	case Reset:
		return NewState()
	}

	return s
}
