package ports

import (
	"context"

	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
)

// CommitClassifier analyzes a batch of commit messages.
type CommitClassifier interface {
	// ClassifyBatch returns one ClassifiedCommit per input message, in input
	// order. Position correspondence is assumed, not content-matched.
	ClassifyBatch(ctx context.Context, messages []string) ([]models.ClassifiedCommit, error)
}

// SentimentScorer scores the sentiment of a single piece of text.
type SentimentScorer interface {
	ScoreSentiment(ctx context.Context, text string) (models.Sentiment, error)
}
