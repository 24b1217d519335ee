package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

// Extra spaces between # and a number, only when the sign is preceded by a
// space. Markdown headings at line start keep their spacing.
var numberSignSpacesRe = regexp.MustCompile(
	`([` + chars.Spaces + `]+)(` + chars.NumberSign + `)[` + chars.Spaces + `]+(\d)`)

// FixNumberSign removes extra spaces between # and the following number.
func FixNumberSign(text string) string {
	return numberSignSpacesRe.ReplaceAllString(text, "${1}${2}${3}")
}
