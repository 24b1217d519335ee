// Package symbols replaces typewriter approximations of symbols with the
// real glyphs: multiplication sign, copyright marks, trademark marks,
// plus-minus, metric exponents, and spacing around §, ¶, № and #.
package symbols

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

const primes = chars.SinglePrime + chars.DoublePrime

var (
	multiplicationSpacingRe = regexp.MustCompile(
		`(\d+)([` + primes + `])?([xX` + chars.MultiplicationSign + `])(\d+)([` + primes + `])?`)

	multiplicationNumbersRe = regexp.MustCompile(
		`(\d+)([` + chars.Spaces + `]?[` + chars.LowercaseChars + primes + `]*)` +
			`([` + chars.Spaces + `][xX][` + chars.Spaces + `])` +
			`(\d+)([` + chars.Spaces + `]?[` + chars.LowercaseChars + primes + `]*)`)

	multiplicationWordsRe = regexp.MustCompile(
		`([` + chars.AllChars + `]+)([` + chars.Spaces + `][xX][` + chars.Spaces + `])([` +
			chars.AllChars + `]+)`)

	multiplicationNumberWordRe = regexp.MustCompile(
		`(\d)([` + chars.Spaces + `]?)([xX` + chars.MultiplicationSign + `])([` +
			chars.Spaces + `])([` + chars.LowercaseChars + `]+)`)
)

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// fixMultiplicationSpacing spaces out tight dimension notations: 12x3 and
// 12"x3" become 12 × 3 and 12" × 3".
func fixMultiplicationSpacing(text string) string {
	return multiplicationSpacingRe.ReplaceAllString(text,
		"${1}${2}"+chars.NBSP+chars.MultiplicationSign+chars.NBSP+"${4}${5}")
}

// fixMultiplicationBetweenNumbers handles numbers with optional units:
// 5 mm x 5 mm. Iterative so chains (2 x 3 x 4) resolve fully.
func fixMultiplicationBetweenNumbers(text string) string {
	return overlap.ReplaceIterative(text, multiplicationNumbersRe,
		"${1}${2}"+chars.NBSP+chars.MultiplicationSign+chars.NBSP+"${4}${5}")
}

// fixMultiplicationBetweenWords handles word pairs (s x v x h, Marciano x
// Clay). A capital X between two capitalized words reads as a middle
// initial and is left alone.
func fixMultiplicationBetweenWords(text string) string {
	return overlap.ReplaceIterativeFunc(text, multiplicationWordsRe, func(g []string) string {
		if startsUpper(g[1]) && startsUpper(g[3]) && strings.Contains(g[2], " X ") {
			return g[0]
		}
		return g[1] + chars.NBSP + chars.MultiplicationSign + chars.NBSP + g[3]
	})
}

// fixMultiplicationNumberAndWord handles a count before a word: both
// 4 x object and 4x object keep their spacing style. Hex notation (0xd)
// stays untouched since a space after the x is required.
func fixMultiplicationNumberAndWord(text string) string {
	return overlap.ReplaceAllSubmatchFunc(text, multiplicationNumberWordRe, func(g []string) string {
		if g[2] != "" {
			return g[1] + chars.NBSP + chars.MultiplicationSign + chars.NBSP + g[5]
		}
		return g[1] + chars.MultiplicationSign + chars.NBSP + g[5]
	})
}

// FixMultiplicationSign converts x and X used as multiplication into ×.
func FixMultiplicationSign(text string) string {
	text = fixMultiplicationSpacing(text)
	text = fixMultiplicationBetweenNumbers(text)
	text = fixMultiplicationBetweenWords(text)
	text = fixMultiplicationNumberAndWord(text)
	return text
}
