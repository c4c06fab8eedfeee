package ports

import (
	"context"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
)

// VideoLister resolves a channel URL into the channel's videos, newest first.
type VideoLister interface {
	// ListVideos fetches the videos for a channel URL. A channel with no
	// uploads returns an empty slice and no error; the caller decides what
	// that means.
	ListVideos(ctx context.Context, channelURL string) ([]models.Video, error)
}
