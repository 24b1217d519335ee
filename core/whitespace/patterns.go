package whitespace

import (
	"regexp"
	"strings"
	"sync"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// localePatterns holds the compiled regexes that embed locale data (ordinal
// indicators, quote glyphs). Compiled once per locale and cached.
type localePatterns struct {
	spaceBeforeOrdinal *regexp.Regexp
	nbspAfterOrdinal   *regexp.Regexp
	romanNumeral       *regexp.Regexp // nil for locales without Roman ordinals
	regnalNumber       *regexp.Regexp // nil for locales without Roman ordinals
	singleLetter       *regexp.Regexp
	englishI           *regexp.Regexp // en-us only
}

var patternCache sync.Map // locale ID -> *localePatterns

func profilePatterns(p *locale.Profile) *localePatterns {
	if cached, ok := patternCache.Load(p.ID); ok {
		return cached.(*localePatterns)
	}

	ord := `(?:` + p.OrdinalIndicator + `)`
	lp := &localePatterns{
		spaceBeforeOrdinal: regexp.MustCompile(
			`(\d)[` + chars.Spaces + `]?(` + ord + `)([` + chars.Spaces + `]|\b)`),
		nbspAfterOrdinal: regexp.MustCompile(
			`([^` + chars.NBSP + `\d_%\-]|^)(\d{1,2})(` + ord + `)([` + chars.Spaces + `]?)([` +
				chars.AllChars + `])`),
	}

	if p.RomanOrdinalIndicator != "" {
		roman := `(?:` + p.RomanOrdinalIndicator + `)`
		lp.romanNumeral = regexp.MustCompile(
			`(\b[` + chars.UppercaseChars + `][` + chars.AllChars + `]?` + roman +
				`[` + chars.Spaces + `]?)?` +
				`(\b)([` + chars.RomanNumerals + `]+)(` + roman + `)([` + chars.Spaces + `]?)([` +
				chars.AllChars + `\d])`)
		lp.regnalNumber = regexp.MustCompile(
			`(\b[` + chars.UppercaseChars + `][` + chars.LowercaseChars + `]+?)` +
				`([` + chars.Spaces + `])` +
				`([` + chars.RomanNumerals + `]+\b)(` + roman + `)([` + chars.NBSP + `]?)`)
	}

	// Mid-sentence single capital letters attract a nbsp; the English
	// pronoun I is left to its own rule.
	upper := chars.UppercaseChars
	if p.ID == "en-us" {
		upper = strings.Replace(upper, "A-Z", "A-HJ-Z", 1)
		lp.englishI = regexp.MustCompile(
			`(^|[` + chars.Spaces + `])(I)([` + chars.Spaces + `])`)
	}
	lp.singleLetter = regexp.MustCompile(
		`([^` + chars.SentencePunctuation + chars.Ellipsis + chars.ClosingBrackets +
			p.DoubleQuoteClose + p.SingleQuoteClose + chars.Apostrophe +
			chars.MultiplicationSign + chars.EmDash + chars.EnDash + `])` +
			`([` + chars.Spaces + `])` +
			`([` + upper + `])` +
			`(([` + chars.Spaces + `])|(\.?$|$))`)

	patternCache.Store(p.ID, lp)
	return lp
}
