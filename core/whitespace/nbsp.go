package whitespace

import (
	"regexp"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

var (
	nbspBetweenWordsRe = regexp.MustCompile(
		`([` + chars.AllChars + `]{2,})[` + chars.NBSP + chars.NarrowNBSP + `]([` +
			chars.AllChars + `]{2,})`)

	lowercasePrepositionRe = regexp.MustCompile(
		`(^|[` + chars.Space + `]|[^` + chars.AllChars + `\d` + chars.Apostrophe +
			`\` + chars.Plus + chars.Minus + `\` + chars.Hyphen + `])` +
			`([` + chars.LowercaseChars + `])` +
			`([` + chars.Space + `])`)

	uppercasePrepositionRe = regexp.MustCompile(
		`(^|[` + chars.SentencePunctuation + chars.Ellipsis + chars.Copyright +
			chars.RegisteredTrademark + chars.SoundRecordingCopyright + `])` +
			`([` + chars.Spaces + `]?)` +
			`([` + chars.UppercaseChars + `])` +
			`([` + chars.Spaces + `])`)

	ampersandRe = regexp.MustCompile(
		`([` + chars.Spaces + `])(&)([` + chars.Spaces + `])`)

	cardinalNumberRe = regexp.MustCompile(
		`([^` + chars.NBSP + `\d]|^)(\d{1,2})([` + chars.Spaces + `])([` + chars.AllChars + `])`)

	// An ordinal date is day.month.year with the segments range-checked, so
	// version strings such as 3.0.0 pass through untouched.
	ordinalDateRe = regexp.MustCompile(
		`(^|[^\d.])` +
			`(0?[1-9]|[12]\d|3[01])\.[` + chars.Spaces + `]?` +
			`(0?[1-9]|1[0-2])\.[` + chars.Spaces + `]?` +
			`([12]\d{3})` +
			`(\D|$)`)

	percentRe = regexp.MustCompile(
		`(\d)([` + chars.Spaces + `])([` + chars.Percent + chars.Permille + chars.Permyriad + `])`)
)

// removeNBSPBetweenMultiCharWords replaces a nbsp joining two multi-letter
// words with an ordinary space. Iterative, matches chain through shared words.
func removeNBSPBetweenMultiCharWords(text string) string {
	return overlap.ReplaceIterative(text, nbspBetweenWordsRe, "${1} ${2}")
}

// AddNBSPAfterPreposition glues single-letter prepositions to the following
// word: lowercase ones anywhere, uppercase ones at a sentence start, and the
// English pronoun I in en-us.
func AddNBSPAfterPreposition(text string, p *locale.Profile) string {
	text = overlap.ReplaceIterative(text, lowercasePrepositionRe, "${1}${2}"+chars.NBSP)
	text = uppercasePrepositionRe.ReplaceAllString(text, "${1}${2}${3}"+chars.NBSP)
	if lp := profilePatterns(p); lp.englishI != nil {
		text = lp.englishI.ReplaceAllString(text, "${1}${2}"+chars.NBSP)
	}
	return text
}

func addNBSPAfterAmpersand(text string) string {
	return ampersandRe.ReplaceAllString(text, " ${2}"+chars.NBSP)
}

// addNBSPAfterCardinalNumber glues 1-2 digit numbers to the following word.
// Longer numbers are left alone to limit false positives.
func addNBSPAfterCardinalNumber(text string) string {
	return cardinalNumberRe.ReplaceAllString(text, "${1}${2}"+chars.NBSP+"${4}")
}

func addNBSPAfterOrdinalNumber(text string, p *locale.Profile) string {
	re := profilePatterns(p).nbspAfterOrdinal
	return re.ReplaceAllString(text, "${1}${2}${3}"+chars.NBSP+"${5}")
}

// addNBSPWithinOrdinalDate sets the locale's spaces between the day, month
// and year of an ordinal date (12.12.2017 -> 12. 12. 2017).
func addNBSPWithinOrdinalDate(text string, p *locale.Profile) string {
	return overlap.ReplaceAllSubmatchFunc(text, ordinalDateRe, func(g []string) string {
		return g[1] + g[2] + "." + p.OrdinalDateFirstSpace + g[3] + "." + p.OrdinalDateSecondSpace + g[4] + g[5]
	})
}

// addNBSPAfterRomanNumeral glues an ordinal Roman numeral to the following
// word (I. kapitola). A preceding initial pattern (G. D. Lambert) suppresses
// the fix. No-op for locales without Roman ordinals.
func addNBSPAfterRomanNumeral(text string, p *locale.Profile) string {
	re := profilePatterns(p).romanNumeral
	if re == nil {
		return text
	}
	return overlap.ReplaceAllSubmatchFunc(text, re, func(g []string) string {
		if g[1] != "" {
			return g[0]
		}
		return g[2] + g[3] + g[4] + chars.NBSP + g[6]
	})
}

// fixNBSPForNameWithRegnalNumber binds a regnal number to the name it
// follows: Karel IV. gets the nbsp before the numeral, not after it. A bare
// I is treated as the English pronoun and left alone.
func fixNBSPForNameWithRegnalNumber(text string, p *locale.Profile) string {
	re := profilePatterns(p).regnalNumber
	if re == nil {
		return text
	}
	return overlap.ReplaceAllSubmatchFunc(text, re, func(g []string) string {
		name, numeral, indicator, trailing := g[1], g[3], g[4], g[5]
		if numeral == "I" {
			return name + chars.Space + numeral + indicator + trailing
		}
		if trailing == "" {
			return name + chars.NBSP + numeral + indicator
		}
		return name + chars.NBSP + numeral + indicator + chars.Space
	})
}

// addNBSPBeforeSingleLetter binds a lone mid-sentence capital to the word
// before it (Sputnik V). In en-us the pronoun I is excluded; elsewhere a
// non-breaking space after a lone I is downgraded to an ordinary one.
func addNBSPBeforeSingleLetter(text string, p *locale.Profile) string {
	re := profilePatterns(p).singleLetter
	return overlap.ReplaceAllSubmatchFunc(text, re, func(g []string) string {
		before, letter, after, space2 := g[1], g[3], g[4], g[5]
		if p.ID != "en-us" && letter == "I" {
			switch space2 {
			case chars.NBSP, chars.HairSpace, chars.NarrowNBSP:
				return before + chars.NBSP + letter + chars.Space
			}
		}
		return before + chars.NBSP + letter + after
	})
}

// fixSpaceBeforePercent sets the locale's space between a number and %, ‰
// or ‱. Locales without one (en-us) get the sign tight to the number.
func fixSpaceBeforePercent(text string, p *locale.Profile) string {
	return percentRe.ReplaceAllString(text, "${1}"+p.SpaceBeforePercent+"${3}")
}

// FixNBSP applies all non-breaking-space fixes in order.
func FixNBSP(text string, p *locale.Profile) string {
	text = removeNBSPBetweenMultiCharWords(text)
	text = AddNBSPAfterPreposition(text, p)
	text = addNBSPAfterAmpersand(text)
	text = addNBSPAfterCardinalNumber(text)
	text = addNBSPAfterOrdinalNumber(text, p)
	text = addNBSPWithinOrdinalDate(text, p)
	text = addNBSPAfterRomanNumeral(text, p)
	text = addNBSPBeforeSingleLetter(text, p)
	text = fixNBSPForNameWithRegnalNumber(text, p)
	text = fixSpaceBeforePercent(text, p)
	return text
}
