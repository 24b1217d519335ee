package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	registeredRe = regexp.MustCompile(
		`(?i)([^0-9]|^)([` + chars.Spaces + `]*)(\(r\)|` + chars.RegisteredTrademark + `)`)
	trademarkRe = regexp.MustCompile(
		`(?i)([^0-9]|^)([` + chars.Spaces + `]*)(\(tm\)|` + chars.Trademark + `)`)
	serviceMarkRe = regexp.MustCompile(
		`(?i)([^0-9]|^)([` + chars.Spaces + `]*)(\(sm\)|` + chars.ServiceMark + `)`)
)

// FixMarks converts (r), (tm) and (sm) to ®, ™ and ℠ and drops the space
// between the mark and the word it belongs to. The leading non-digit guard
// keeps references like Section 7(r) intact.
func FixMarks(text string) string {
	text = registeredRe.ReplaceAllString(text, "${1}"+chars.RegisteredTrademark)
	text = trademarkRe.ReplaceAllString(text, "${1}"+chars.Trademark)
	text = serviceMarkRe.ReplaceAllString(text, "${1}"+chars.ServiceMark)
	return text
}
