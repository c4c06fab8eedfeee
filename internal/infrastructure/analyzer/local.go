package analyzer

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	"github.com/Tomas-vilte/VidCommit/internal/domain/ports"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
)

// typeKeywords drive the keyword classifier. Slice order is the tie-break
// order when two types collect the same number of hits.
var typeKeywords = []struct {
	commitType models.CommitType
	keywords   []string
}{
	{models.TypeBugfix, []string{"fix", "bug", "issue", "patch", "resolve"}},
	{models.TypeFeature, []string{"add", "new", "implement", "feature", "support"}},
	{models.TypeRefactor, []string{"refactor", "cleanup", "reorganize", "restructure"}},
	{models.TypeDocs, []string{"doc", "documentation", "readme", "comment"}},
	{models.TypeTest, []string{"test", "spec", "coverage"}},
	{models.TypeChore, []string{"chore", "deps", "update", "upgrade", "bump"}},
	{models.TypePerf, []string{"perf", "performance", "optimize", "speed"}},
}

var (
	positiveWords = []string{"improve", "improved", "add", "added", "support", "optimize", "clean", "enhance", "upgrade", "simplify"}
	negativeWords = []string{"revert", "remove", "broken", "crash", "fail", "bug", "error", "hack", "workaround", "regression"}
)

// LocalClassifier analyzes commits without any external service. When a
// SentimentScorer is provided it is consulted per message; otherwise a small
// word list decides the sentiment.
type LocalClassifier struct {
	scorer ports.SentimentScorer
}

func NewLocalClassifier(scorer ports.SentimentScorer) *LocalClassifier {
	return &LocalClassifier{scorer: scorer}
}

func (c *LocalClassifier) ClassifyBatch(ctx context.Context, messages []string) ([]models.ClassifiedCommit, error) {
	results := make([]models.ClassifiedCommit, 0, len(messages))

	for _, message := range messages {
		sentiment, err := c.scoreSentiment(ctx, message)
		if err != nil {
			logger.Warn(ctx, "sentiment scorer failed, using word list", "error", err)
			sentiment = lexiconSentiment(message)
		}

		typeScore := classifyType(message)
		results = append(results, models.ClassifiedCommit{
			Message:      message,
			Sentiment:    sentiment,
			Type:         typeScore,
			QualityScore: qualityScore(message, sentiment, typeScore),
		})
	}

	return results, nil
}

func (c *LocalClassifier) scoreSentiment(ctx context.Context, message string) (models.Sentiment, error) {
	if c.scorer == nil {
		return lexiconSentiment(message), nil
	}
	return c.scorer.ScoreSentiment(ctx, message)
}

// classifyType counts keyword hits per type. Confidence is the hit ratio
// against the type's keyword list, capped at 1.
func classifyType(message string) models.TypeScore {
	lower := strings.ToLower(message)

	best := models.TypeScore{Type: models.TypeOther, Confidence: 0}
	bestHits := 0

	for _, entry := range typeKeywords {
		hits := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = models.TypeScore{
				Type:       entry.commitType,
				Confidence: models.ClampScore(float64(hits) / float64(len(entry.keywords))),
			}
		}
	}

	return best
}

func lexiconSentiment(message string) models.Sentiment {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return models.Sentiment{Label: models.SentimentNeutral, Score: 0}
	}

	positive, negative := 0, 0
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return models.Sentiment{
			Label: models.SentimentPositive,
			Score: models.ClampScore(0.5 + 0.15*float64(positive-negative)),
		}
	case negative > positive:
		return models.Sentiment{
			Label: models.SentimentNegative,
			Score: models.ClampScore(0.5 + 0.15*float64(negative-positive)),
		}
	default:
		return models.Sentiment{Label: models.SentimentNeutral, Score: 0.5}
	}
}

// qualityScore starts at 0.5 and rewards descriptive messages, positive
// sentiment and a confident type classification.
func qualityScore(message string, sentiment models.Sentiment, typeScore models.TypeScore) float64 {
	score := 0.5

	if len(message) > 20 {
		score += 0.2
	}
	if len(message) > 50 {
		score += 0.1
	}
	if sentiment.Label == models.SentimentPositive {
		score += 0.1
	}
	if typeScore.Confidence > 0.5 {
		score += 0.1
	}

	return models.ClampScore(score)
}
