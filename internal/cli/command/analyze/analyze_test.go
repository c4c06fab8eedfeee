package analyze

import (
	"testing"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickVideo(t *testing.T) {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	videos := []models.Video{
		{ID: "v1", Title: "no changelog", Description: "just vibes"},
		{ID: "v2", Title: "release notes", Description: "feat: add dark mode\n- improve loading"},
		{ID: "v3", Title: "more notes", Description: "fix: crash on startup"},
	}

	t.Run("explicit video ID", func(t *testing.T) {
		video, err := pickVideo(videos, "v3", trans)

		require.NoError(t, err)
		assert.Equal(t, "v3", video.ID)
	})

	t.Run("unknown video ID fails", func(t *testing.T) {
		_, err := pickVideo(videos, "nope", trans)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("defaults to the newest video with commits", func(t *testing.T) {
		video, err := pickVideo(videos, "", trans)

		require.NoError(t, err)
		assert.Equal(t, "v2", video.ID)
	})

	t.Run("no extractable commits anywhere fails", func(t *testing.T) {
		_, err := pickVideo([]models.Video{{ID: "v1", Description: "plain text"}}, "", trans)

		require.Error(t, err)
	})
}
