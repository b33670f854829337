// Package normalize applies minimal, order-sensitive cleanup to article
// body text while preserving legally meaningful structure: separator lines
// survive, and inline ayat markers like "(1)" stay in the text verbatim
// together with any leading whitespace in front of them.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// hyphenBreakPattern matches a PDF line-wrap artifact: a hyphen
	// directly before a line break, e.g. "perun-\ndangan".
	hyphenBreakPattern = regexp.MustCompile(`-\n\s*`)

	// blankRunPattern matches runs of four or more blank lines
	// (five or more consecutive newlines).
	blankRunPattern = regexp.MustCompile(`\n{5,}`)

	// hspaceRunPattern matches runs of horizontal whitespace. Newlines are
	// deliberately excluded.
	hspaceRunPattern = regexp.MustCompile(`[ \t]{2,}`)
)

// Clean normalizes one article's body text. The rules run in a fixed order;
// reordering them changes the output:
//
//  1. embedded NUL characters are removed
//  2. Unicode NFKC normalization folds compatibility characters
//  3. words hyphenated across a line break are rejoined
//  4. trailing whitespace is trimmed per line (leading is kept)
//  5. runs of 4+ blank lines collapse to exactly 2; up to 3 are kept as
//     intentional separators
//  6. runs of spaces/tabs collapse to a single space
//  7. the whole text is trimmed
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = norm.NFKC.String(text)
	text = hyphenBreakPattern.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	text = strings.Join(lines, "\n")

	text = blankRunPattern.ReplaceAllString(text, "\n\n\n")
	text = hspaceRunPattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
