package whitespace

import "regexp"

var emptyLinesRe = regexp.MustCompile(`[\n\r]{2,}`)

// FixLines collapses two or more consecutive line breaks into a single
// newline. Callers that want to keep paragraph breaks skip this fix via the
// RemoveLines option.
func FixLines(text string) string {
	return emptyLinesRe.ReplaceAllString(text, "\n")
}
