package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
	"golang.org/x/oauth2"
)

const inferenceBase = "https://api-inference.huggingface.co/models"

// Scorer calls the Hugging Face Inference API for sentiment analysis.
type Scorer struct {
	model  string
	client httpclient.HTTPClient
}

// NewScorer builds a scorer authenticated with the configured token. When
// client is nil an oauth2 bearer client is created from the token.
func NewScorer(cfg *config.Config, client httpclient.HTTPClient) *Scorer {
	if client == nil {
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.HuggingFace.Token})
		client = oauth2.NewClient(context.Background(), source)
	}
	return &Scorer{
		model:  cfg.HuggingFace.Model,
		client: client,
	}
}

type (
	inferenceRequest struct {
		Inputs       string `json:"inputs"`
		WaitForModel bool   `json:"wait_for_model"`
	}

	labelScore struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
)

// ScoreSentiment classifies the text and returns the best-scoring label.
// Blank input short-circuits to NEUTRAL without calling the API.
func (s *Scorer) ScoreSentiment(ctx context.Context, text string) (models.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return models.Sentiment{Label: models.SentimentNeutral, Score: 0}, nil
	}

	body, err := json.Marshal(inferenceRequest{Inputs: text, WaitForModel: true})
	if err != nil {
		return models.Sentiment{}, fmt.Errorf("error encoding inference request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", inferenceBase, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Sentiment{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Sentiment{}, apperrors.NewAppError(apperrors.TypeAnalysis, "sentiment inference request failed", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return models.Sentiment{}, apperrors.NewAppError(apperrors.TypeConfiguration, "Hugging Face token rejected", nil).
			WithSuggestion("Get a token at https://huggingface.co/settings/tokens")
	case http.StatusTooManyRequests:
		return models.Sentiment{}, apperrors.ErrQuotaExceeded
	default:
		return models.Sentiment{}, apperrors.NewAppError(apperrors.TypeAnalysis,
			fmt.Sprintf("unexpected inference response: %s", resp.Status), nil)
	}

	// The API wraps the scores in a list per input.
	var decoded [][]labelScore
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.Sentiment{}, apperrors.ErrInvalidClassifierOutput.WithError(err)
	}
	if len(decoded) == 0 || len(decoded[0]) == 0 {
		return models.Sentiment{}, apperrors.ErrInvalidClassifierOutput
	}

	best := decoded[0][0]
	for _, candidate := range decoded[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return models.Sentiment{
		Label: models.NormalizeSentimentLabel(best.Label),
		Score: models.ClampScore(best.Score),
	}, nil
}
