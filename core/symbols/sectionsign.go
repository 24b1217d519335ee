package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// fixSpacingAroundSymbol normalizes the spacing around a reference symbol
// (§, ¶, №): an ordinary space before it, the locale's space after it.
func fixSpacingAroundSymbol(text, symbol, spaceAfter string) string {
	sym := regexp.QuoteMeta(symbol)

	addBefore := regexp.MustCompile(`([^\s\(\[\{` + sym + `])(` + sym + `+)`)
	text = addBefore.ReplaceAllString(text, "${1} ${2}")

	replaceAfter := regexp.MustCompile(`(` + sym + `+)[` + chars.Spaces + `]+`)
	text = replaceAfter.ReplaceAllString(text, "${1}"+spaceAfter)

	addAfter := regexp.MustCompile(`(` + sym + `+)([` + chars.AllChars + `\d_])`)
	text = addAfter.ReplaceAllString(text, "${1}"+spaceAfter+"${2}")

	return text
}

// FixSectionSign fixes spacing around § and ¶.
func FixSectionSign(text string, p *locale.Profile) string {
	text = fixSpacingAroundSymbol(text, chars.SectionSign, p.SpaceAfterSectionSign)
	text = fixSpacingAroundSymbol(text, chars.ParagraphSign, p.SpaceAfterParagraphSign)
	return text
}

// FixNumeroSign fixes spacing around №.
func FixNumeroSign(text string, p *locale.Profile) string {
	return fixSpacingAroundSymbol(text, chars.NumeroSign, p.SpaceAfterNumeroSign)
}
