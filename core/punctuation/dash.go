package punctuation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

const anyDash = chars.Hyphen + chars.EnDash + chars.EmDash

var (
	dashBetweenWordsRe = regexp.MustCompile(
		`([` + chars.AllChars + `\d])` +
			`([` + chars.Spaces + `]*[` + chars.EnDash + chars.EmDash + `]{1,3}[` + chars.Spaces + `]*` +
			`|[` + chars.Spaces + `]+[` + chars.Hyphen + `]{1,3}[` + chars.Spaces + `]+)` +
			`([` + chars.AllChars + `\d])`)

	dashBeforePunctuationRe = regexp.MustCompile(
		`([` + chars.AllChars + `])([` + chars.Spaces + `]?)([` + anyDash + `]{1,3})` +
			`([` + chars.Spaces + `]?)([` + chars.SentencePunctuation + `]|\n|\r)`)

	dashWithinBracketsRe = regexp.MustCompile(
		`([` + chars.OpeningBrackets + `])[` + chars.Spaces + `]*([` + anyDash + `]+)[` +
			chars.Spaces + `]*([` + chars.ClosingBrackets + `])`)

	dashWordOpenBracketRe = regexp.MustCompile(
		`([` + chars.AllChars + `])[` + chars.Spaces + `]*[` + anyDash + `]{1,3}[` +
			chars.Spaces + `]*([` + chars.OpeningBrackets + `])`)

	dashCloseBracketWordRe = regexp.MustCompile(
		`([` + chars.ClosingBrackets + `])[` + chars.Spaces + `]*[` + anyDash + `]{1,3}[` +
			chars.Spaces + `]*([` + chars.AllChars + `])`)

	dashWordCloseBracketRe = regexp.MustCompile(
		`([` + chars.AllChars + `])[` + chars.Spaces + `]*[` + anyDash + `]{1,3}[` +
			chars.Spaces + `]*([` + chars.ClosingBrackets + `])`)

	dashOpenBracketWordRe = regexp.MustCompile(
		`([` + chars.OpeningBrackets + `])[` + chars.Spaces + `]*[` + anyDash + `]{1,3}[` +
			chars.Spaces + `]*([` + chars.AllChars + `])`)

	dashCloseOpenBracketRe = regexp.MustCompile(
		`([` + chars.ClosingBrackets + `])[` + chars.Spaces + `]*[` + anyDash + `][` +
			chars.Spaces + `]*([` + chars.OpeningBrackets + `])`)

	dashBetweenNumbersRe = regexp.MustCompile(
		`(\d)([` + chars.Spaces + `]?[` + anyDash + `]{1,3}[` + chars.Spaces + `]?)(\d)`)

	dashPercentageRangeRe = regexp.MustCompile(
		`([` + chars.Percent + chars.Permille + chars.Permyriad + `])` +
			`([` + chars.Spaces + `]?[` + anyDash + `]{1,3}[` + chars.Spaces + `]?)(\d)`)
)

// fixDashesBetweenWords rewrites a dash joining two words or a word and a
// number to the locale's dash and spacing. A bare hyphen needs spaces on
// both sides to qualify; en and em dashes qualify with or without them.
func fixDashesBetweenWords(text string, p *locale.Profile) string {
	return dashBetweenWordsRe.ReplaceAllString(text,
		"${1}"+p.DashSpaceBefore+p.DashChar+p.DashSpaceAfter+"${3}")
}

// fixDashBetweenWordAndPunctuation handles a dash trailing a clause, before
// punctuation or a line break. The space after the dash is dropped there.
func fixDashBetweenWordAndPunctuation(text string, p *locale.Profile) string {
	return dashBeforePunctuationRe.ReplaceAllString(text,
		"${1}"+p.DashSpaceBefore+p.DashChar+"${5}")
}

// fixDashBetweenWordAndBrackets covers the six word/bracket adjacency cases.
// A dash standing alone inside brackets only loses its padding.
func fixDashBetweenWordAndBrackets(text string, p *locale.Profile) string {
	dash := p.DashSpaceBefore + p.DashChar + p.DashSpaceAfter
	text = dashWithinBracketsRe.ReplaceAllString(text, "${1}${2}${3}")
	text = dashWordOpenBracketRe.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashCloseBracketWordRe.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashWordCloseBracketRe.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashOpenBracketWordRe.ReplaceAllString(text, "${1}"+dash+"${2}")
	text = dashCloseOpenBracketRe.ReplaceAllString(text, "${1}"+dash+"${2}")
	return text
}

// fixDashBetweenCardinalNumbers turns number ranges into en-dash ranges. The
// replacement goes through a marker rune so the iterative pass that resolves
// chains like 1-2-3 cannot re-match its own output.
func fixDashBetweenCardinalNumbers(text string) string {
	text = overlap.ReplaceIterative(text, dashBetweenNumbersRe, "${1}"+chars.MarkerEnDash+"${3}")
	return strings.ReplaceAll(text, chars.MarkerEnDash, chars.EnDash)
}

func fixDashBetweenPercentageRange(text string) string {
	return dashPercentageRangeRe.ReplaceAllString(text, "${1}"+chars.EnDash+"${3}")
}

var ordinalRangeCache sync.Map // locale ID -> *regexp.Regexp

func ordinalRangePattern(p *locale.Profile) *regexp.Regexp {
	if cached, ok := ordinalRangeCache.Load(p.ID); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(
		`(?i)(\d)(` + p.OrdinalIndicator + `)` +
			`([` + chars.Spaces + `]?[` + anyDash + `]{1,3}[` + chars.Spaces + `]?)` +
			`(\d)(` + p.OrdinalIndicator + `)`)
	ordinalRangeCache.Store(p.ID, re)
	return re
}

// fixDashBetweenOrdinalNumbers turns ordinal ranges (4.-5., 1st-2nd) into
// en-dash ranges.
func fixDashBetweenOrdinalNumbers(text string, p *locale.Profile) string {
	return ordinalRangePattern(p).ReplaceAllString(text, "${1}${2}"+chars.EnDash+"${4}${5}")
}

// FixDash applies all dash fixes in order.
func FixDash(text string, p *locale.Profile) string {
	text = fixDashesBetweenWords(text, p)
	text = fixDashBetweenWordAndPunctuation(text, p)
	text = fixDashBetweenWordAndBrackets(text, p)
	text = fixDashBetweenCardinalNumbers(text)
	text = fixDashBetweenPercentageRange(text)
	text = fixDashBetweenOrdinalNumbers(text, p)
	return text
}
