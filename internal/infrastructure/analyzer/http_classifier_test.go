package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRemoteConfig() *config.Config {
	return &config.Config{
		Analyzer: config.AnalyzerConfig{
			BaseURL:           "https://analyzer.test",
			RequestsPerMinute: 600,
		},
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestRemoteClassifier_ClassifyBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the batch and decodes results", func(t *testing.T) {
		client := new(MockHTTPClient)
		var captured *http.Request
		client.On("Do", mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(0).(*http.Request)
		}).Return(jsonResponse(http.StatusOK, `{
			"count": 1,
			"results": [{
				"message": "fix: resolve login bug",
				"sentiment": {"label": "negative", "score": 0.9},
				"type": {"type": "fix", "confidence": 0.8},
				"quality_score": 0.7
			}]
		}`), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		results, err := classifier.ClassifyBatch(ctx, []string{"fix: resolve login bug"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, models.SentimentNegative, results[0].Sentiment.Label)
		assert.Equal(t, models.TypeBugfix, results[0].Type.Type)

		require.NotNil(t, captured)
		assert.Equal(t, http.MethodPost, captured.Method)
		assert.Equal(t, "https://analyzer.test/analyze/commits/batch", captured.URL.String())
		assert.Empty(t, captured.Header.Get("Authorization"))

		body, err := io.ReadAll(captured.Body)
		require.NoError(t, err)
		var sent batchRequest
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, []string{"fix: resolve login bug"}, sent.Commits)
	})

	t.Run("signs the request when a secret is configured", func(t *testing.T) {
		cfg := newRemoteConfig()
		cfg.Analyzer.Secret = "topsecret"

		client := new(MockHTTPClient)
		var captured *http.Request
		client.On("Do", mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(0).(*http.Request)
		}).Return(jsonResponse(http.StatusOK, `{"count": 0, "results": []}`), nil)

		classifier := NewRemoteClassifier(cfg, client)
		_, err := classifier.ClassifyBatch(ctx, []string{"chore: bump deps"})
		require.NoError(t, err)

		require.NotNil(t, captured)
		auth := captured.Header.Get("Authorization")
		require.True(t, len(auth) > len("Bearer "))

		token, err := jwt.Parse(auth[len("Bearer "):], func(t *jwt.Token) (interface{}, error) {
			return []byte("topsecret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "vidcommit", claims["iss"])
	})

	t.Run("scores outside the unit interval are clamped", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{
			"count": 1,
			"results": [{
				"message": "m",
				"sentiment": {"label": "great stuff", "score": 1.7},
				"type": {"type": "wizardry", "confidence": -0.2},
				"quality_score": 2.0
			}]
		}`), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		results, err := classifier.ClassifyBatch(ctx, []string{"m"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, models.SentimentNeutral, results[0].Sentiment.Label)
		assert.Equal(t, 1.0, results[0].Sentiment.Score)
		assert.Equal(t, models.TypeOther, results[0].Type.Type)
		assert.Equal(t, 0.0, results[0].Type.Confidence)
		assert.Equal(t, 1.0, results[0].QualityScore)
	})

	t.Run("unauthorized maps to a configuration error", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusUnauthorized, ""), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		_, err := classifier.ClassifyBatch(ctx, []string{"m"})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeConfiguration, appErr.Type)
	})

	t.Run("rate limited maps to quota error", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusTooManyRequests, ""), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		_, err := classifier.ClassifyBatch(ctx, []string{"m"})

		assert.ErrorIs(t, err, apperrors.ErrQuotaExceeded)
	})

	t.Run("server error maps to analyzer unavailable", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusServiceUnavailable, ""), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		_, err := classifier.ClassifyBatch(ctx, []string{"m"})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeAnalysis, appErr.Type)
	})

	t.Run("malformed body maps to invalid output", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, "{not json"), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		_, err := classifier.ClassifyBatch(ctx, []string{"m"})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.TypeAnalysis, appErr.Type)
	})

	t.Run("missing results decodes to empty non-nil slice", func(t *testing.T) {
		client := new(MockHTTPClient)
		client.On("Do", mock.Anything).Return(jsonResponse(http.StatusOK, `{"count": 0}`), nil)

		classifier := NewRemoteClassifier(newRemoteConfig(), client)
		results, err := classifier.ClassifyBatch(ctx, []string{"m"})

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}
