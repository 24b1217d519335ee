// Package punctuation fixes periods, ellipses, dashes and quotes. Each fix
// group is an ordered sequence of regex passes; quote fixes additionally go
// through an intermediate marker alphabet so classification and glyph choice
// stay separate.
package punctuation

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	threeCharsRe = regexp.MustCompile(`[` + chars.Ellipsis + `\.]{3,}`)

	twoCharsRe = regexp.MustCompile(
		`\.` + chars.Ellipsis + `|` + chars.Ellipsis + `{2,}|` + chars.Ellipsis + `\.`)

	twoSpacedPeriodsRe = regexp.MustCompile(
		`[` + chars.Spaces + `]\.{2}[` + chars.Spaces + `]`)

	ellipsisAroundCommasRe = regexp.MustCompile(
		`(,)([` + chars.Spaces + `]?)(` + chars.Ellipsis + `)([` + chars.Spaces + `]?)(,)`)

	ellipsisAsLastItemRe = regexp.MustCompile(
		`(,)([` + chars.Spaces + `]?)(` + chars.Ellipsis + `)([` + chars.Spaces + `]?)` +
			`(\B|[` + chars.ClosingBrackets + `])([^,]|$)`)

	aposiopesisParagraphStartRe = regexp.MustCompile(
		`(?m)(^` + chars.Ellipsis + `)([` + chars.Spaces + `])([` + chars.AllChars + `])`)

	aposiopesisBetweenSentencesRe = regexp.MustCompile(
		`([` + chars.LowercaseChars + `])([` + chars.Spaces + `])(` + chars.Ellipsis + `)` +
			`([` + chars.Spaces + `]?)([` + chars.UppercaseChars + `])`)

	aposiopesisBetweenWordsRe = regexp.MustCompile(
		`([` + chars.AllChars + `])(` + chars.Ellipsis + `)([` + chars.AllChars + `])`)
)

func replaceThreeCharsWithEllipsis(text string) string {
	return threeCharsRe.ReplaceAllString(text, chars.Ellipsis)
}

func replaceTwoCharsWithEllipsis(text string) string {
	return twoCharsRe.ReplaceAllString(text, chars.Ellipsis)
}

func replaceTwoPeriodsWithEllipsis(text string) string {
	return twoSpacedPeriodsRe.ReplaceAllString(text, chars.Space+chars.Ellipsis+chars.Space)
}

// fixEllipsisSpacingAroundCommas normalizes an ellipsis standing in for a
// list item: ", … ," becomes ", …,".
func fixEllipsisSpacingAroundCommas(text string) string {
	return ellipsisAroundCommasRe.ReplaceAllString(text, "${1} "+chars.Ellipsis+"${5}")
}

func fixEllipsisAsLastItem(text string) string {
	return ellipsisAsLastItemRe.ReplaceAllString(text, "${1}${3}${5}${6}")
}

func fixAposiopesisStartingParagraph(text string) string {
	return aposiopesisParagraphStartRe.ReplaceAllString(text, "${1}${3}")
}

// fixAposiopesisStartingSentence keeps an ellipsis that opens a sentence
// tight to the first word: ". … word" -> ". …word".
func fixAposiopesisStartingSentence(text string, p *locale.Profile) string {
	re := regexp.MustCompile(
		`([^` + p.TerminalQuotes() + `])([` + chars.SentencePunctuation + `])` +
			`([` + chars.Spaces + `]?)([` + chars.Ellipsis + `])([` + chars.Spaces + `]?)` +
			`([` + chars.LowercaseChars + `])`)
	return re.ReplaceAllString(text, "${1}${2} ${4}${6}")
}

func fixAposiopesisBetweenSentences(text string) string {
	return aposiopesisBetweenSentencesRe.ReplaceAllString(text, "${1}${3} ${5}")
}

func fixAposiopesisBetweenWords(text string) string {
	return aposiopesisBetweenWordsRe.ReplaceAllString(text, "${1}${2} ${3}")
}

func fixEllipsisBetweenSentences(text string, p *locale.Profile) string {
	re := regexp.MustCompile(
		`([` + chars.SentencePunctuation + p.TerminalQuotes() + `])` +
			`([` + chars.Spaces + `]?)(` + chars.Ellipsis + `)([` + chars.Spaces + `]?)` +
			`([` + chars.UppercaseChars + `])`)
	return re.ReplaceAllString(text, "${1} ${3} ${5}")
}

// fixAposiopesisEndingParagraph drops the space before a trailing-off
// ellipsis at line end, optionally through a closing quote.
func fixAposiopesisEndingParagraph(text string, p *locale.Profile) string {
	re := regexp.MustCompile(
		`(?m)([` + chars.LowercaseChars + `])([` + chars.Spaces + `])+(` +
			chars.Ellipsis + `[` + p.DoubleQuoteClose + p.SingleQuoteClose + `]?$)`)
	return re.ReplaceAllString(text, "${1}${3}")
}

// FixEllipsis applies all ellipsis fixes in order: first normalize dot runs
// into the ellipsis glyph, then fix its spacing per context, then clean up
// leftover two-character combinations.
func FixEllipsis(text string, p *locale.Profile) string {
	text = replaceThreeCharsWithEllipsis(text)
	text = fixEllipsisSpacingAroundCommas(text)
	text = fixEllipsisAsLastItem(text)
	text = fixAposiopesisStartingParagraph(text)
	text = fixAposiopesisStartingSentence(text, p)
	text = fixAposiopesisBetweenSentences(text)
	text = fixAposiopesisBetweenWords(text)
	text = fixEllipsisBetweenSentences(text, p)
	text = fixAposiopesisEndingParagraph(text, p)
	text = replaceTwoCharsWithEllipsis(text)
	text = replaceTwoPeriodsWithEllipsis(text)
	return text
}
