package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/Tomas-vilte/VidCommit/internal/infrastructure/httpclient"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

const tokenTTL = time.Minute

// RemoteClassifier sends commit batches to the analysis service. Requests
// are rate limited client-side and, when a shared secret is configured,
// signed with a short-lived HS256 token.
type RemoteClassifier struct {
	baseURL string
	secret  string
	limiter *rate.Limiter
	client  httpclient.HTTPClient
	now     func() time.Time
}

func NewRemoteClassifier(cfg *config.Config, client httpclient.HTTPClient) *RemoteClassifier {
	rpm := cfg.Analyzer.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	return &RemoteClassifier{
		baseURL: cfg.Analyzer.BaseURL,
		secret:  cfg.Analyzer.Secret,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		client:  client,
		now:     time.Now,
	}
}

type (
	batchRequest struct {
		Commits []string `json:"commits"`
	}

	batchResponse struct {
		Count   int                       `json:"count"`
		Results []models.ClassifiedCommit `json:"results"`
	}
)

func (c *RemoteClassifier) ClassifyBatch(ctx context.Context, messages []string) ([]models.ClassifiedCommit, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(batchRequest{Commits: messages})
	if err != nil {
		return nil, fmt.Errorf("error encoding batch request: %w", err)
	}

	url := fmt.Sprintf("%s/analyze/commits/batch", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.secret != "" {
		token, err := c.signToken()
		if err != nil {
			return nil, fmt.Errorf("error signing request token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrAnalyzerUnavailable.WithError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "error closing response body", "error", err)
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, apperrors.NewAppError(apperrors.TypeConfiguration, "analyzer rejected the request token", nil).
			WithSuggestion("Check the analyzer secret in your config")
	case http.StatusTooManyRequests:
		return nil, apperrors.ErrQuotaExceeded
	default:
		if resp.StatusCode >= 500 {
			return nil, apperrors.ErrAnalyzerUnavailable.WithContext("status", resp.Status)
		}
		return nil, apperrors.NewAppError(apperrors.TypeAnalysis, fmt.Sprintf("unexpected analyzer response: %s", resp.Status), nil)
	}

	var decoded batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.ErrInvalidClassifierOutput.WithError(err)
	}

	return normalizeResults(decoded.Results), nil
}

// signToken mints a short-lived HS256 token for the analyzer.
func (c *RemoteClassifier) signToken() (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"iss": "vidcommit",
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.secret))
}

// normalizeResults forces the service output onto the fixed label and type
// domains and clamps all scores.
func normalizeResults(results []models.ClassifiedCommit) []models.ClassifiedCommit {
	normalized := make([]models.ClassifiedCommit, 0, len(results))
	for _, r := range results {
		r.Sentiment.Label = models.NormalizeSentimentLabel(string(r.Sentiment.Label))
		r.Sentiment.Score = models.ClampScore(r.Sentiment.Score)
		r.Type.Type = models.NormalizeCommitType(string(r.Type.Type))
		r.Type.Confidence = models.ClampScore(r.Type.Confidence)
		r.QualityScore = models.ClampScore(r.QualityScore)
		normalized = append(normalized, r)
	}
	return normalized
}
