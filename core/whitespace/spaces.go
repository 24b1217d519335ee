// Package whitespace normalizes spaces, line breaks and non-breaking spaces.
// Fixes run as ordered regex passes; the order within FixSpaces and FixNBSP
// is load-bearing, later passes assume earlier ones have run.
package whitespace

import (
	"regexp"
	"strings"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	multipleSpacesRe = regexp.MustCompile(`(\S)[` + chars.Spaces + `]{2,}(\S)`)

	leadingWhitespaceRe = regexp.MustCompile(`^(\s+)([-*+>]*)`)
	trailingSpaceRe     = regexp.MustCompile(`\s+$`)

	spaceBeforePauseRe = regexp.MustCompile(
		`[` + chars.Spaces + `]([` + chars.SentencePausePunctuation + `])([^\-\)]|$)`)

	spaceBeforeTerminalRe = regexp.MustCompile(
		`([^` + chars.OpeningBrackets + `])[` + chars.Spaces + `]([` +
			chars.TerminalPunctuation + chars.ClosingBrackets + chars.Degree + `])`)

	spaceAfterOpeningBracketRe = regexp.MustCompile(
		`([` + chars.OpeningBrackets + `])[` + chars.Spaces + `]([^` + chars.ClosingBrackets + `])`)

	spaceBeforeOpeningBracketRe = regexp.MustCompile(
		`([` + chars.AllChars + `])([` + chars.OpeningBrackets + `])([` +
			chars.AllChars + chars.Ellipsis + `])([` +
			chars.AllChars + chars.Ellipsis + chars.ClosingBrackets + `])`)

	spaceAfterTerminalRe = regexp.MustCompile(
		`([` + chars.AllChars + `]{2,}|[` + chars.Ellipsis + `])([` +
			chars.TerminalPunctuation + `])([` + chars.UppercaseChars + `])`)

	spaceAfterClosingBracketRe = regexp.MustCompile(
		`([` + chars.ClosingBrackets + `])([` + chars.AllChars + `])`)

	spaceAfterPauseRe = regexp.MustCompile(
		`([` + chars.AllChars + `]{2,}|[` + chars.Ellipsis + `])([` +
			chars.SentencePausePunctuation + `])([` + chars.AllChars + `])`)
)

// removeMultipleSpaces collapses runs of two or more spaces between words
// into a single ordinary space.
func removeMultipleSpaces(text string) string {
	return multipleSpacesRe.ReplaceAllString(text, "${1} ${2}")
}

// removeSpacesAtParagraphBeginning strips leading whitespace from each line.
// With keepListIndent set, indentation before a markdown list or quote marker
// (-, *, +, >) survives.
func removeSpacesAtParagraphBeginning(text string, keepListIndent bool) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = leadingWhitespaceRe.ReplaceAllStringFunc(line, func(m string) string {
			groups := leadingWhitespaceRe.FindStringSubmatch(m)
			if keepListIndent && groups[2] != "" {
				return groups[1] + groups[2]
			}
			return groups[2]
		})
	}
	return strings.Join(lines, "\n")
}

func removeSpacesAtParagraphEnd(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = trailingSpaceRe.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// removeSpaceBeforeSentencePausePunctuation drops spaces before , : ; while
// leaving emoticons such as :) and :-( alone.
func removeSpaceBeforeSentencePausePunctuation(text string) string {
	return spaceBeforePauseRe.ReplaceAllString(text, "${1}${2}")
}

// removeSpaceBeforeTerminalPunctuation drops spaces before . ! ?, closing
// brackets and the degree sign. Empty bracket pairs keep their inner space.
func removeSpaceBeforeTerminalPunctuation(text string) string {
	return spaceBeforeTerminalRe.ReplaceAllString(text, "${1}${2}")
}

// removeSpaceBeforeOrdinalIndicator joins a number with its ordinal suffix
// (1 st -> 1st, 1 . -> 1.). The trailing boundary keeps "4 there" intact.
func removeSpaceBeforeOrdinalIndicator(text string, p *locale.Profile) string {
	re := profilePatterns(p).spaceBeforeOrdinal
	return re.ReplaceAllString(text, "${1}${2}${3}")
}

func removeSpaceAfterOpeningBrackets(text string) string {
	return spaceAfterOpeningBracketRe.ReplaceAllString(text, "${1}${2}")
}

// addSpaceBeforeOpeningBrackets separates a word from a following bracketed
// word. Plural indicators such as word(s) and mass(es) stay joined.
func addSpaceBeforeOpeningBrackets(text string) string {
	return overlap.ReplaceAllSubmatchFunc(text, spaceBeforeOpeningBracketRe, func(g []string) string {
		if g[3] == "s" || g[3] == "S" || g[3]+g[4] == "es" || g[3]+g[4] == "ES" {
			return g[1] + g[2] + g[3] + g[4]
		}
		return g[1] + chars.Space + g[2] + g[3] + g[4]
	})
}

// addSpaceAfterTerminalPunctuation inserts a space between a sentence end and
// a following capitalized word. Requiring two preceding letters spares
// initials such as U.S. and shielded filenames.
func addSpaceAfterTerminalPunctuation(text string) string {
	return spaceAfterTerminalRe.ReplaceAllString(text, "${1}${2} ${3}")
}

func addSpaceAfterClosingBrackets(text string) string {
	return spaceAfterClosingBracketRe.ReplaceAllString(text, "${1} ${2}")
}

func addSpaceAfterSentencePause(text string) string {
	return spaceAfterPauseRe.ReplaceAllString(text, "${1}${2} ${3}")
}

// AddSpaceBeforeSymbol inserts an ordinary space between a word and symbol
// (e.g. Company©). The symbols engine swaps it for the locale's space.
func AddSpaceBeforeSymbol(text, symbol string) string {
	re := regexp.MustCompile(
		`([^` + chars.Spaces + chars.OpeningBrackets + regexp.QuoteMeta(symbol) + `])(` +
			regexp.QuoteMeta(symbol) + `)`)
	return re.ReplaceAllString(text, "${1}"+chars.Space+"${2}")
}

// AddSpaceAfterSymbol inserts the given space after a symbol that sits tight
// against the following text.
func AddSpaceAfterSymbol(text, symbol, space string) string {
	re := regexp.MustCompile(
		`(` + regexp.QuoteMeta(symbol) + `)([^` + chars.Spaces + regexp.QuoteMeta(symbol) + `])`)
	return re.ReplaceAllString(text, "${1}"+space+"${2}")
}

// ReplaceSpacesAfterSymbol normalizes whatever spaces follow a symbol to the
// given space.
func ReplaceSpacesAfterSymbol(text, symbol, space string) string {
	re := regexp.MustCompile(
		`(` + regexp.QuoteMeta(symbol) + `)([` + chars.Spaces + `]+)`)
	return re.ReplaceAllString(text, "${1}"+space)
}

// FixSpaces applies all ordinary-space fixes in order.
func FixSpaces(text string, p *locale.Profile, keepListIndent bool) string {
	text = removeMultipleSpaces(text)
	text = removeSpacesAtParagraphBeginning(text, keepListIndent)
	text = removeSpacesAtParagraphEnd(text)
	text = removeSpaceBeforeSentencePausePunctuation(text)
	text = removeSpaceBeforeTerminalPunctuation(text)
	text = removeSpaceBeforeOrdinalIndicator(text, p)
	text = removeSpaceAfterOpeningBrackets(text)
	text = addSpaceBeforeOpeningBrackets(text)
	text = addSpaceAfterTerminalPunctuation(text)
	text = addSpaceAfterClosingBrackets(text)
	text = addSpaceAfterSentencePause(text)
	return text
}
