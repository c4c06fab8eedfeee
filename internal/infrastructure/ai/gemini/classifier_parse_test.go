package gemini

import (
	"testing"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	messages := []string{"feat: add dark mode", "fix: crash on startup"}

	valid := `[
		{"sentiment": {"label": "POSITIVE", "score": 0.9}, "type": {"type": "feature", "confidence": 0.95}, "quality_score": 0.8},
		{"sentiment": {"label": "NEGATIVE", "score": 0.7}, "type": {"type": "bugfix", "confidence": 0.9}, "quality_score": 0.75}
	]`

	t.Run("plain json array", func(t *testing.T) {
		results, err := parseBatch(valid, messages)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "feat: add dark mode", results[0].Message)
		assert.Equal(t, models.SentimentPositive, results[0].Sentiment.Label)
		assert.Equal(t, models.TypeFeature, results[0].Type.Type)
		assert.Equal(t, models.TypeBugfix, results[1].Type.Type)
	})

	t.Run("markdown fenced json", func(t *testing.T) {
		fenced := "Here is the analysis:\n```json\n" + valid + "\n```"

		results, err := parseBatch(fenced, messages)

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("labels and types are normalized", func(t *testing.T) {
		loose := `[
			{"sentiment": {"label": "mostly positive", "score": 1.4}, "type": {"type": "feat", "confidence": -1}, "quality_score": 0.5},
			{"sentiment": {"label": "meh", "score": 0.5}, "type": {"type": "wizardry", "confidence": 0.5}, "quality_score": 0.5}
		]`

		results, err := parseBatch(loose, messages)

		require.NoError(t, err)
		assert.Equal(t, models.SentimentPositive, results[0].Sentiment.Label)
		assert.Equal(t, 1.0, results[0].Sentiment.Score)
		assert.Equal(t, models.TypeFeature, results[0].Type.Type)
		assert.Equal(t, 0.0, results[0].Type.Confidence)
		assert.Equal(t, models.SentimentNeutral, results[1].Sentiment.Label)
		assert.Equal(t, models.TypeOther, results[1].Type.Type)
	})

	t.Run("count mismatch is invalid output", func(t *testing.T) {
		short := `[{"sentiment": {"label": "NEUTRAL", "score": 0.5}, "type": {"type": "other", "confidence": 0}, "quality_score": 0.5}]`

		_, err := parseBatch(short, messages)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeAnalysis, appErr.Type)
	})

	t.Run("non json is invalid output", func(t *testing.T) {
		_, err := parseBatch("I could not analyze that", messages)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeAnalysis, appErr.Type)
	})
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt([]string{"feat: add dark mode", "fix: crash"})

	assert.Contains(t, prompt, "1. feat: add dark mode")
	assert.Contains(t, prompt, "2. fix: crash")
	assert.Contains(t, prompt, "JSON array")
}
