// Package words corrects word-level typos: accidental uppercase,
// publication identifiers and abbreviation spacing.
package words

import (
	"regexp"
	"strings"

	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	// Two leading capitals followed by a lowercase word body (UPpercase).
	doubleCapsRe = regexp.MustCompile(
		`([^` + chars.AllChars + `]|^)` +
			`([` + chars.UppercaseChars + `]{2})` +
			`([` + chars.LowercaseChars + `]{2,})`)

	// One lowercase letter followed by an uppercase word body (cAPSLOCK).
	swappedCaseRe = regexp.MustCompile(
		`([^` + chars.AllChars + `\d_]|^)` +
			`([` + chars.LowercaseChars + `])` +
			`([` + chars.UppercaseChars + `]{2,})`)
)

// FixCase corrects the two most common accidental-uppercase errors:
// a doubled initial capital (UPpercase) and a swapped case (uPPERCASE).
// Mixed case inside a word (UppERcaSe) is left alone, as are camel-case
// brand names such as iOS.
func FixCase(text string) string {
	text = overlap.ReplaceAllSubmatchFunc(text, doubleCapsRe, func(g []string) string {
		caps := []rune(g[2])
		return g[1] + string(caps[0]) + strings.ToLower(string(caps[1])) + g[3]
	})
	text = overlap.ReplaceAllSubmatchFunc(text, swappedCaseRe, func(g []string) string {
		if g[2] == "i" && strings.HasPrefix(g[3], "OS") {
			return g[0]
		}
		return g[1] + strings.ToUpper(g[2]) + strings.ToLower(g[3])
	})
	return text
}
