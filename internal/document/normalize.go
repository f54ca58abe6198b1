package document

import (
	"regexp"
	"strings"
)

var (
	blankLines = regexp.MustCompile(`\n{3,}`)
	inlineRuns = regexp.MustCompile(`[ \t]+`)
)

// normalizeLayout tidies raw document text before pattern matching:
// repeated blank lines collapse to one empty line and tab/space runs to a
// single space. Line structure is otherwise preserved because several
// patterns anchor on newlines.
func normalizeLayout(text string) string {
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = inlineRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
