package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		accepted   bool
		normalized string
	}{
		{
			name:     "too short line is rejected",
			line:     "ok",
			accepted: false,
		},
		{
			name:     "blank line is rejected",
			line:     "   ",
			accepted: false,
		},
		{
			name:       "conventional commit prefix kept unmodified",
			line:       "feat: add dark mode",
			accepted:   true,
			normalized: "feat: add dark mode",
		},
		{
			name:       "conventional commit prefix is case-insensitive",
			line:       "FIX: broken login redirect",
			accepted:   true,
			normalized: "FIX: broken login redirect",
		},
		{
			name:       "surrounding whitespace trimmed before matching",
			line:       "   chore: bump dependencies   ",
			accepted:   true,
			normalized: "chore: bump dependencies",
		},
		{
			name:       "dash bullet stripped",
			line:       "- improve loading",
			accepted:   true,
			normalized: "improve loading",
		},
		{
			name:     "dash bullet with short remainder rejected",
			line:     "- abc",
			accepted: false,
		},
		{
			name:       "unicode bullet stripped",
			line:       "• rewrite the settings page",
			accepted:   true,
			normalized: "rewrite the settings page",
		},
		{
			name:       "numbered list prefix stripped",
			line:       "3. refactor database",
			accepted:   true,
			normalized: "refactor database",
		},
		{
			name:     "numbered list with short remainder rejected",
			line:     "1. ab",
			accepted: false,
		},
		{
			name:       "change verb line kept unmodified",
			line:       "Added support for chapters",
			accepted:   true,
			normalized: "Added support for chapters",
		},
		{
			name:       "change verb with colon kept unmodified",
			line:       "fixed: the audio desync issue",
			accepted:   true,
			normalized: "fixed: the audio desync issue",
		},
		{
			name:       "checkmark glyph stripped",
			line:       "✅ implemented the new encoder",
			accepted:   true,
			normalized: "implemented the new encoder",
		},
		{
			name:       "ascii x marker stripped",
			line:       "x migrate the build to CI",
			accepted:   true,
			normalized: "migrate the build to CI",
		},
		{
			name:     "word starting with x is not a checkbox",
			line:     "xylophone tutorial part 2",
			accepted: false,
		},
		{
			name:     "plain sentence rejected",
			line:     "random sentence here",
			accepted: false,
		},
		{
			name:     "timestamps are rejected",
			line:     "00:00 intro",
			accepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.line)

			assert.Equal(t, tt.accepted, result.Accepted)
			if tt.accepted {
				assert.Equal(t, tt.normalized, result.Normalized)
			}
		})
	}
}

func TestClassify_RulePriority(t *testing.T) {
	// A conventional-commit line that also starts like a change verb must be
	// handled by the earlier rule and stay unmodified.
	result := Classify("fix: updated the deployment scripts")

	assert.True(t, result.Accepted)
	assert.Equal(t, "fix: updated the deployment scripts", result.Normalized)
}
