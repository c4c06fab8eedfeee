package huggingface

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func newTestConfig() *config.Config {
	return &config.Config{
		HuggingFace: config.HuggingFaceConfig{
			Token: "hf-token",
			Model: "piyushcoderhack/Commit_analysis",
		},
	}
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestScorer_ScoreSentiment(t *testing.T) {
	ctx := context.Background()

	t.Run("best scoring label wins", func(t *testing.T) {
		client := new(mockHTTPClient)
		var captured *http.Request
		client.On("Do", mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(0).(*http.Request)
		}).Return(response(http.StatusOK, `[[
			{"label": "LABEL_POSITIVE", "score": 0.83},
			{"label": "LABEL_NEGATIVE", "score": 0.17}
		]]`), nil)

		scorer := NewScorer(newTestConfig(), client)
		got, err := scorer.ScoreSentiment(ctx, "improved the loading screen")

		require.NoError(t, err)
		assert.Equal(t, models.SentimentPositive, got.Label)
		assert.InDelta(t, 0.83, got.Score, 1e-9)

		require.NotNil(t, captured)
		assert.Contains(t, captured.URL.String(), "piyushcoderhack/Commit_analysis")
	})

	t.Run("unknown label normalizes to neutral", func(t *testing.T) {
		client := new(mockHTTPClient)
		client.On("Do", mock.Anything).Return(response(http.StatusOK, `[[
			{"label": "LABEL_2", "score": 0.6}
		]]`), nil)

		scorer := NewScorer(newTestConfig(), client)
		got, err := scorer.ScoreSentiment(ctx, "change icon")

		require.NoError(t, err)
		assert.Equal(t, models.SentimentNeutral, got.Label)
	})

	t.Run("blank input short-circuits to neutral", func(t *testing.T) {
		client := new(mockHTTPClient)

		scorer := NewScorer(newTestConfig(), client)
		got, err := scorer.ScoreSentiment(ctx, "   ")

		require.NoError(t, err)
		assert.Equal(t, models.Sentiment{Label: models.SentimentNeutral, Score: 0}, got)
		client.AssertNotCalled(t, "Do", mock.Anything)
	})

	t.Run("unauthorized maps to configuration error", func(t *testing.T) {
		client := new(mockHTTPClient)
		client.On("Do", mock.Anything).Return(response(http.StatusUnauthorized, ""), nil)

		scorer := NewScorer(newTestConfig(), client)
		_, err := scorer.ScoreSentiment(ctx, "fix bug")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeConfiguration, appErr.Type)
	})

	t.Run("empty score list is invalid output", func(t *testing.T) {
		client := new(mockHTTPClient)
		client.On("Do", mock.Anything).Return(response(http.StatusOK, `[]`), nil)

		scorer := NewScorer(newTestConfig(), client)
		_, err := scorer.ScoreSentiment(ctx, "fix bug")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeAnalysis, appErr.Type)
	})
}
