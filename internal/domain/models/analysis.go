package models

import "strings"

// SentimentLabel is the fixed sentiment domain assigned by the classifier.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// SentimentLabels lists the full label domain in display order.
func SentimentLabels() []SentimentLabel {
	return []SentimentLabel{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// CommitType is the fixed commit-type domain assigned by the classifier.
type CommitType string

const (
	TypeFeature  CommitType = "feature"
	TypeBugfix   CommitType = "bugfix"
	TypeRefactor CommitType = "refactor"
	TypeDocs     CommitType = "docs"
	TypeTest     CommitType = "test"
	TypeChore    CommitType = "chore"
	TypePerf     CommitType = "perf"
	TypeOther    CommitType = "other"
)

// CommitTypes lists the full type domain in display order.
func CommitTypes() []CommitType {
	return []CommitType{
		TypeFeature, TypeBugfix, TypeRefactor, TypeDocs,
		TypeTest, TypeChore, TypePerf, TypeOther,
	}
}

type (
	// Sentiment is a label plus the classifier's score for it, in [0,1].
	Sentiment struct {
		Label SentimentLabel `json:"label"`
		Score float64        `json:"score"`
	}

	// TypeScore is a commit type plus the classifier's confidence, in [0,1].
	TypeScore struct {
		Type       CommitType `json:"type"`
		Confidence float64    `json:"confidence"`
	}

	// ClassifiedCommit is one commit message with the full analysis attached.
	// It is produced only by a classifier and never mutated afterwards.
	ClassifiedCommit struct {
		Message      string    `json:"message"`
		Sentiment    Sentiment `json:"sentiment"`
		Type         TypeScore `json:"type"`
		QualityScore float64   `json:"quality_score"`
	}

	// BatchSummary is derived from an ordered list of ClassifiedCommit.
	// Distributions carry every key of their domain, absent ones with count 0.
	BatchSummary struct {
		Count                 int                    `json:"count"`
		SentimentDistribution map[SentimentLabel]int `json:"sentiment_distribution"`
		TypeDistribution      map[CommitType]int     `json:"type_distribution"`
		AverageQualityScore   float64                `json:"average_quality_score"`
		AverageSentimentScore float64                `json:"average_sentiment_score"`
	}
)

// NormalizeSentimentLabel maps free-form classifier output onto the fixed
// label domain. Anything that is not clearly positive or negative is NEUTRAL.
func NormalizeSentimentLabel(raw string) SentimentLabel {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, "POSITIVE"):
		return SentimentPositive
	case strings.Contains(upper, "NEGATIVE"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// NormalizeCommitType maps free-form classifier output onto the fixed type
// domain, falling back to "other".
func NormalizeCommitType(raw string) CommitType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range CommitTypes() {
		if lower == string(t) {
			return t
		}
	}
	// common aliases used by the classifiers
	switch lower {
	case "feat":
		return TypeFeature
	case "fix", "bug":
		return TypeBugfix
	case "performance":
		return TypePerf
	case "documentation":
		return TypeDocs
	}
	return TypeOther
}

// ClampScore forces a score into [0,1].
func ClampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
