package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

var plusMinusRe = regexp.MustCompile(`\+\-|\-\+`)

// FixPlusMinus converts +- and -+ to ±.
func FixPlusMinus(text string) string {
	return plusMinusRe.ReplaceAllString(text, chars.PlusMinus)
}
