package regex

import "regexp"

var (
	// Commit-like line patterns, in classifier priority order
	ConventionalCommit = regexp.MustCompile(`(?i)^(feat|fix|refactor|docs|test|chore|perf|style|build|ci|revert):\s*.+`)
	DashBullet         = regexp.MustCompile(`^-\s+(.+)`)
	GlyphBullet        = regexp.MustCompile(`^[•◦▪‣·]\s*(.+)`)
	NumberedList       = regexp.MustCompile(`^\d+\.\s+(.+)`)
	ChangeVerb         = regexp.MustCompile(`(?i)^(added|fixed|updated|improved|removed|changed|implemented|created|deleted|modified)[\s:].+`)
	CheckGlyph         = regexp.MustCompile(`^[✓✔✅✗❌]\s*(.+)`)
	// Plain "x" needs trailing whitespace so words like "xylophone" survive.
	CheckX = regexp.MustCompile(`^x\s+(.+)`)

	// Channel URL patterns
	ChannelHandle = regexp.MustCompile(`/@([^/?#]+)`)
	ChannelID     = regexp.MustCompile(`/channel/([^/?#]+)`)

	// AI and JSON parsing
	MarkdownJSONBlock = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")
)
