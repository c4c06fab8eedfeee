// Package extractor mines commit-style statements out of free-form video
// descriptions. It is heuristic on purpose: the "commits" never touch a real
// version control system, they are changelog-looking lines creators paste into
// descriptions.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	rx "github.com/Tomas-vilte/VidCommit/internal/regex"
)

// minLineLength is the trimmed length below which a line is rejected outright.
const minLineLength = 3

// minRemainderLength applies after a list prefix has been stripped.
const minRemainderLength = 3

// Result is the outcome of classifying a single line.
type Result struct {
	Accepted   bool
	Normalized string
}

// Reject is the zero Result.
var Reject = Result{}

// Accept wraps a normalized line in an accepting Result.
func Accept(normalized string) Result {
	return Result{Accepted: true, Normalized: normalized}
}

// rule is one predicate+transform pair of the classifier chain.
type rule struct {
	pattern *regexp.Regexp
	// apply turns a matching trimmed line into a Result. A rule can still
	// reject after matching (stripped remainder too short).
	apply func(line string, match []string) Result
}

// keepWhole accepts the trimmed line unmodified.
func keepWhole(line string, _ []string) Result {
	return Accept(line)
}

// stripPrefix accepts the first capture group when it is long enough.
func stripPrefix(_ string, match []string) Result {
	remainder := strings.TrimSpace(match[1])
	if utf8.RuneCountInString(remainder) <= minRemainderLength {
		return Reject
	}
	return Accept(remainder)
}

// rules is the fixed priority chain; first match wins, no match rejects.
var rules = []rule{
	{rx.ConventionalCommit, keepWhole},
	{rx.DashBullet, stripPrefix},
	{rx.GlyphBullet, stripPrefix},
	{rx.NumberedList, stripPrefix},
	{rx.ChangeVerb, keepWhole},
	{rx.CheckGlyph, stripPrefix},
	{rx.CheckX, stripPrefix},
}

// Classify decides whether a single line of text is a commit-like statement.
// It is a pure function over the line.
func Classify(line string) Result {
	trimmed := strings.TrimSpace(line)
	if utf8.RuneCountInString(trimmed) < minLineLength {
		return Reject
	}

	for _, r := range rules {
		match := r.pattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		return r.apply(trimmed, match)
	}

	return Reject
}
