package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
	rx "github.com/Tomas-vilte/VidCommit/internal/regex"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Classifier analyzes commit batches with a Gemini model.
type Classifier struct {
	client *genai.Client
	model  string
}

func NewClassifier(ctx context.Context, cfg *config.Config) (*Classifier, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, apperrors.ErrGeminiAPIKeyInvalid
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeAnalysis, "failed to create Gemini client", err)
	}

	return &Classifier{
		client: client,
		model:  cfg.Gemini.Model,
	}, nil
}

func (c *Classifier) Close() error {
	return c.client.Close()
}

func (c *Classifier) ClassifyBatch(ctx context.Context, messages []string) ([]models.ClassifiedCommit, error) {
	if len(messages) == 0 {
		return []models.ClassifiedCommit{}, nil
	}

	model := c.client.GenerativeModel(c.model)
	model.ResponseMIMEType = "application/json"

	prompt := buildPrompt(messages)
	logger.Debug(ctx, "sending batch to Gemini", "model", c.model, "commits", len(messages))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if strings.Contains(err.Error(), "API key not valid") {
			return nil, apperrors.ErrGeminiAPIKeyInvalid.WithError(err)
		}
		if strings.Contains(err.Error(), "quota") || strings.Contains(err.Error(), "429") {
			return nil, apperrors.ErrQuotaExceeded.WithError(err)
		}
		return nil, apperrors.NewAppError(apperrors.TypeAnalysis, "Gemini request failed", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	return parseBatch(text, messages)
}

func buildPrompt(messages []string) string {
	var sb strings.Builder
	sb.WriteString("Analyze each of the following commit messages.\n")
	sb.WriteString("For every commit return one JSON object with:\n")
	sb.WriteString(`- "sentiment": {"label": "POSITIVE"|"NEGATIVE"|"NEUTRAL", "score": 0..1}` + "\n")
	sb.WriteString(`- "type": {"type": "feature"|"bugfix"|"refactor"|"docs"|"test"|"chore"|"perf"|"other", "confidence": 0..1}` + "\n")
	sb.WriteString(`- "quality_score": 0..1 (how descriptive and useful the message is)` + "\n")
	sb.WriteString("Respond with ONLY a JSON array, one object per commit, in the same order.\n\n")
	sb.WriteString("Commits:\n")
	for i, msg := range messages {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, msg))
	}
	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.ErrInvalidClassifierOutput
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", apperrors.ErrInvalidClassifierOutput
	}
	return sb.String(), nil
}

type rawAnalysis struct {
	Sentiment struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"sentiment"`
	Type struct {
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
	} `json:"type"`
	QualityScore float64 `json:"quality_score"`
}

// parseBatch decodes the model output and pairs it positionally with the
// input messages. A model that returns the wrong number of entries is
// treated as invalid output.
func parseBatch(text string, messages []string) ([]models.ClassifiedCommit, error) {
	payload := strings.TrimSpace(text)
	if m := rx.MarkdownJSONBlock.FindStringSubmatch(payload); m != nil {
		payload = strings.TrimSpace(m[1])
	}

	var raw []rawAnalysis
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, apperrors.ErrInvalidClassifierOutput.WithError(err)
	}
	if len(raw) != len(messages) {
		return nil, apperrors.ErrInvalidClassifierOutput.
			WithContext("expected", len(messages)).
			WithContext("got", len(raw))
	}

	results := make([]models.ClassifiedCommit, 0, len(messages))
	for i, entry := range raw {
		results = append(results, models.ClassifiedCommit{
			Message: messages[i],
			Sentiment: models.Sentiment{
				Label: models.NormalizeSentimentLabel(entry.Sentiment.Label),
				Score: models.ClampScore(entry.Sentiment.Score),
			},
			Type: models.TypeScore{
				Type:       models.NormalizeCommitType(entry.Type.Type),
				Confidence: models.ClampScore(entry.Type.Confidence),
			},
			QualityScore: models.ClampScore(entry.QualityScore),
		})
	}
	return results, nil
}
