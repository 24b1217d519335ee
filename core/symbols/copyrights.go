package symbols

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/whitespace"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	copyrightRe = regexp.MustCompile(`(?i)\(c\)([` + chars.Spaces + `]*)(\d)`)
	soundRecRe  = regexp.MustCompile(`(?i)\(p\)([` + chars.Spaces + `]*)(\d)`)
)

// replaceCopyright swaps a parenthesized letter for the symbol. The
// trailing digit requirement keeps section references like 7(c) intact.
func replaceCopyright(text string, re *regexp.Regexp, symbol string) string {
	return re.ReplaceAllString(text, symbol+"${1}${2}")
}

// fixCopyrightSpacing separates the symbol from a preceding name and
// normalizes the space between symbol and year to the locale's.
func fixCopyrightSpacing(text, symbol, spaceAfter string) string {
	text = whitespace.AddSpaceBeforeSymbol(text, symbol)
	text = whitespace.ReplaceSpacesAfterSymbol(text, symbol, spaceAfter)
	text = whitespace.AddSpaceAfterSymbol(text, symbol, spaceAfter)
	return text
}

// FixCopyrights converts (c) to © and (p) to ℗ before a year and sets the
// locale's spacing around the symbols.
func FixCopyrights(text string, p *locale.Profile) string {
	text = replaceCopyright(text, copyrightRe, chars.Copyright)
	text = fixCopyrightSpacing(text, chars.Copyright, p.SpaceAfterCopyright)
	text = replaceCopyright(text, soundRecRe, chars.SoundRecordingCopyright)
	text = fixCopyrightSpacing(text, chars.SoundRecordingCopyright, p.SpaceAfterSoundRecording)
	return text
}
