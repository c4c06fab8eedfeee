package extractor

import (
	"strings"
	"unicode/utf8"
)

// minCommitLength is the trimmed length a commit must exceed to survive the
// final filter.
const minCommitLength = 5

// Extract runs the line classifier over a full description and returns the
// accepted lines, deduplicated by exact string match with first-occurrence
// order preserved. It is deterministic and never fails; empty input yields an
// empty slice.
//
// Dedup is exact-match only: the same change phrased as "feat: x" and "- x"
// produces two entries. That is a known limitation of the heuristic, not a
// bug.
func Extract(description string) []string {
	commits := make([]string, 0)
	if strings.TrimSpace(description) == "" {
		return commits
	}

	seen := make(map[string]struct{})
	for _, line := range strings.Split(description, "\n") {
		result := Classify(line)
		if !result.Accepted {
			continue
		}

		commit := strings.TrimSpace(result.Normalized)
		if utf8.RuneCountInString(commit) <= minCommitLength {
			continue
		}
		if _, ok := seen[commit]; ok {
			continue
		}

		seen[commit] = struct{}{}
		commits = append(commits, commit)
	}

	return commits
}
