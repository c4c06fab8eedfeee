// Package stats derives display statistics from classified commit batches.
package stats

import (
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
)

// ErrEmptyInput is returned by Summarize when there is nothing to aggregate.
// Averages over zero commits are undefined, so this is an explicit failure
// instead of a NaN.
var ErrEmptyInput = apperrors.ErrEmptyBatch

// Summarize derives a BatchSummary from an ordered list of classified
// commits. The summary is a fresh value on every call; distributions carry
// every key of their domain so absent labels show up with count 0 and the
// counts always sum to Count.
func Summarize(results []models.ClassifiedCommit) (models.BatchSummary, error) {
	if len(results) == 0 {
		return models.BatchSummary{}, ErrEmptyInput
	}

	summary := models.BatchSummary{
		Count:                 len(results),
		SentimentDistribution: make(map[models.SentimentLabel]int, len(models.SentimentLabels())),
		TypeDistribution:      make(map[models.CommitType]int, len(models.CommitTypes())),
	}
	for _, label := range models.SentimentLabels() {
		summary.SentimentDistribution[label] = 0
	}
	for _, ct := range models.CommitTypes() {
		summary.TypeDistribution[ct] = 0
	}

	var qualitySum, sentimentSum float64
	for _, r := range results {
		summary.SentimentDistribution[models.NormalizeSentimentLabel(string(r.Sentiment.Label))]++
		summary.TypeDistribution[models.NormalizeCommitType(string(r.Type.Type))]++
		qualitySum += r.QualityScore
		sentimentSum += r.Sentiment.Score
	}

	summary.AverageQualityScore = qualitySum / float64(summary.Count)
	summary.AverageSentimentScore = sentimentSum / float64(summary.Count)

	return summary, nil
}

// Percentage derives count/total*100. A zero total yields 0 rather than NaN.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// FilterBySentiment returns the results carrying the given label, in order.
func FilterBySentiment(results []models.ClassifiedCommit, label models.SentimentLabel) []models.ClassifiedCommit {
	filtered := make([]models.ClassifiedCommit, 0)
	for _, r := range results {
		if models.NormalizeSentimentLabel(string(r.Sentiment.Label)) == label {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterByType returns the results carrying the given type, in order.
func FilterByType(results []models.ClassifiedCommit, ct models.CommitType) []models.ClassifiedCommit {
	filtered := make([]models.ClassifiedCommit, 0)
	for _, r := range results {
		if models.NormalizeCommitType(string(r.Type.Type)) == ct {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AverageQualityForType recomputes the mean quality score of one commit type
// from the source slice. Derived on demand: the batches are small and
// immutable per analysis run, so caching would only add staleness bugs.
func AverageQualityForType(results []models.ClassifiedCommit, ct models.CommitType) (float64, error) {
	filtered := FilterByType(results, ct)
	if len(filtered) == 0 {
		return 0, ErrEmptyInput
	}

	var sum float64
	for _, r := range filtered {
		sum += r.QualityScore
	}
	return sum / float64(len(filtered)), nil
}

// AverageConfidenceForSentiment recomputes the mean sentiment score of one
// label from the source slice.
func AverageConfidenceForSentiment(results []models.ClassifiedCommit, label models.SentimentLabel) (float64, error) {
	filtered := FilterBySentiment(results, label)
	if len(filtered) == 0 {
		return 0, ErrEmptyInput
	}

	var sum float64
	for _, r := range filtered {
		sum += r.Sentiment.Score
	}
	return sum / float64(len(filtered)), nil
}
