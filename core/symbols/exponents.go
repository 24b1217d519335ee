package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

// metrePrefixes lists the metric length units whose squares and cubes get
// superscript exponents.
const metrePrefixes = "m|" +
	"dam|hm|km|Mm|Gm|Tm|Pm|Em|Zm|Ym|" +
	"dm|cm|mm|µm|nm|pm|fm|am|zm|ym"

var (
	squareRe = regexp.MustCompile(
		`([` + chars.Spaces + chars.Slash + `])(` + metrePrefixes + `)(2)\b`)
	cubeRe = regexp.MustCompile(
		`([` + chars.Spaces + chars.Slash + `])(` + metrePrefixes + `)(3)\b`)
)

// FixExponents converts m2 and m3 style metric areas and volumes to m² and
// m³. The required space or slash before the unit keeps digits inside words
// (Madam2) untouched.
func FixExponents(text string) string {
	text = squareRe.ReplaceAllString(text, "${1}${2}²")
	text = cubeRe.ReplaceAllString(text, "${1}${2}³")
	return text
}
