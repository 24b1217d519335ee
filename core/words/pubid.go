package words

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

// A hyphen or dash between identifier digit groups, with optional spaces
// on either side.
const dashedSpace = `[` + chars.Spaces + `]?` +
	`[` + chars.Hyphen + chars.EnDash + chars.EmDash + `]` +
	`[` + chars.Spaces + `]?`

var (
	issnRe = regexp.MustCompile(
		`(?i)(issn)(:?)([` + chars.Spaces + `]?)(\d{4})(` + dashedSpace + `)(\d{4})`)
	isbn10Re = regexp.MustCompile(
		`(?i)(isbn)(:?)([` + chars.Spaces + `]?)(\d+)(` + dashedSpace + `)(\d+)(` +
			dashedSpace + `)(\d+)(` + dashedSpace + `)(X|\d+)`)
	isbn13Re = regexp.MustCompile(
		`(?i)(isbn)(:?)([` + chars.Spaces + `]?)(\d+)(` + dashedSpace + `)(\d+)(` +
			dashedSpace + `)(\d+)(` + dashedSpace + `)(\d+)(` + dashedSpace + `)(X|\d+)`)
	bareISBNRe = regexp.MustCompile(
		`(\d+)(` + dashedSpace + `)(\d+)(` + dashedSpace + `)(\d+)(` +
			dashedSpace + `)(\d+)(` + dashedSpace + `)(X|\d+?)`)
)

func fixISSN(text string) string {
	return issnRe.ReplaceAllString(text, "ISSN${2}"+chars.NBSP+"${4}-${6}")
}

func fixISBN10(text string) string {
	return isbn10Re.ReplaceAllString(text, "ISBN${2}"+chars.NBSP+"${4}-${6}-${8}-${10}")
}

func fixISBN13(text string) string {
	return isbn13Re.ReplaceAllString(text, "ISBN${2}"+chars.NBSP+"${4}-${6}-${8}-${10}-${12}")
}

// fixBareISBN normalizes hyphenation of five-group ISBN-like numbers that
// carry no ISBN prefix.
func fixBareISBN(text string) string {
	return bareISBNRe.ReplaceAllString(text, "${1}-${3}-${5}-${7}-${9}")
}

// FixPubID normalizes ISSN, ISBN-10 and ISBN-13 identifiers: the prefix is
// uppercased, a non-breaking space follows it and dashes between digit
// groups collapse to plain hyphens.
func FixPubID(text string) string {
	text = fixISSN(text)
	text = fixISBN10(text)
	text = fixISBN13(text)
	text = fixBareISBN(text)
	return text
}
