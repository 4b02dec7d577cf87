package steps

import (
	"regexp"
	"strings"
)

var (
	spaceRuns   = regexp.MustCompile(`[^\S\n]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Clean normalizes whitespace: runs of spaces and tabs collapse to a single
// space, runs of newlines collapse to a single newline, and leading/trailing
// whitespace is trimmed. Clean is idempotent.
func Clean(input string) string {
	out := spaceRuns.ReplaceAllString(input, " ")
	out = newlineRuns.ReplaceAllString(out, "\n")
	return strings.TrimSpace(out)
}
