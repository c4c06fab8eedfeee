package youtube

import (
	"strings"

	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	rx "github.com/Tomas-vilte/VidCommit/internal/regex"
)

// ChannelRef is a parsed channel URL. Exactly one of Handle or ID is set.
type ChannelRef struct {
	Handle string
	ID     string
}

// ParseChannelURL extracts a channel handle or channel ID from a URL.
// Supported shapes:
//
//	https://www.youtube.com/@channelname
//	https://www.youtube.com/channel/UCXXXXXX
func ParseChannelURL(channelURL string) (ChannelRef, error) {
	trimmed := strings.TrimSpace(channelURL)
	if trimmed == "" {
		return ChannelRef{}, apperrors.ErrEmptyChannelURL
	}

	if m := rx.ChannelID.FindStringSubmatch(trimmed); m != nil {
		return ChannelRef{ID: m[1]}, nil
	}
	if m := rx.ChannelHandle.FindStringSubmatch(trimmed); m != nil {
		return ChannelRef{Handle: m[1]}, nil
	}

	return ChannelRef{}, apperrors.ErrInvalidChannelURL.WithContext("url", trimmed)
}
