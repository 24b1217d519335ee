package punctuation

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/core/overlap"
)

// Runs of periods, with a trailing path separator captured so relative path
// notation (../ and ..\) survives the fix.
var extraPeriodRe = regexp.MustCompile(`\.{2,}([/\\]?)`)

// FixPeriod collapses runs of two or more periods into a single period.
// Sequences that form a relative path keep two dots.
func FixPeriod(text string) string {
	return overlap.ReplaceAllSubmatchFunc(text, extraPeriodRe, func(g []string) string {
		if g[1] != "" {
			return ".." + g[1]
		}
		return "."
	})
}
