package punctuation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/whitespace"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// doubleQuoteAdepts matches every character sequence someone might have used
// as a double quote: straight and curly quotes, low-9 quotes, guillemets, a
// double prime, doubled commas and doubled single-quote-ish characters.
const doubleQuoteAdepts = `"|“|”|„|«|»|″|,{2,}|‚{2,}|['‘’‹›′´` + "`" + `]{2,}`

var (
	extraPunctuationBeforeQuotesRe = regexp.MustCompile(
		`([^` + chars.RomanNumerals + `])([` + chars.SentencePunctuation + `])([` +
			chars.SentencePausePunctuation + `])(` + doubleQuoteAdepts + `)`)

	extraPunctuationAfterQuotesRe = regexp.MustCompile(
		`([^` + chars.RomanNumerals + `])([` + chars.SentencePunctuation + `])(` +
			doubleQuoteAdepts + `)([` + chars.SentencePunctuation + `])`)

	doublePrimeSwapRe = regexp.MustCompile(
		`([^0-9]|^)(` + doubleQuoteAdepts + `)(.+?)(\d+)(` + doubleQuoteAdepts + `)([` +
			chars.TerminalPunctuation + chars.Ellipsis + `])`)

	doublePrimeInchesRe = regexp.MustCompile(
		`(\b\d{1,3})([` + chars.Spaces + `]?)(` + doubleQuoteAdepts + `)`)

	quotedNumberRe = regexp.MustCompile(
		`(` + doubleQuoteAdepts + `)(\d+)(` + chars.MarkerDoublePrime + `)`)

	doubleQuotePairRe = regexp.MustCompile(
		`(` + doubleQuoteAdepts + `)(.*?)(` + doubleQuoteAdepts + `)`)

	unpairedLeftDoubleQuoteRe = regexp.MustCompile(
		`(` + doubleQuoteAdepts + `)([0-9` + chars.AllChars + `])`)

	unpairedRightDoubleQuoteRe = regexp.MustCompile(
		`([` + chars.AllChars + chars.SentencePunctuation + chars.Ellipsis + `])(` +
			doubleQuoteAdepts + `)`)

	unidentifiedDoubleQuoteRe = regexp.MustCompile(
		`([` + chars.Spaces + `])(` + doubleQuoteAdepts + `)([` + chars.Spaces + `])`)

	primeThenUnpairedRightRe = regexp.MustCompile(
		`(` + chars.MarkerDoublePrime + `)(.*?)(` + chars.MarkerUnpairedRightDoubleQuote + `)`)

	unpairedLeftThenPrimeRe = regexp.MustCompile(
		`(` + chars.MarkerUnpairedLeftDoubleQuote + `)(.*?)(` + chars.MarkerDoublePrime + `)`)

	spaceBeforeDoublePrimeRe = regexp.MustCompile(
		`([` + chars.Spaces + `])(` + chars.DoublePrime + `)`)
)

// dqPatterns holds the double-quote regexes that embed locale quote glyphs.
type dqPatterns struct {
	spaceAfterLeft  *regexp.Regexp
	spaceBeforeRight *regexp.Regexp
	addSpaceBeforeLeft *regexp.Regexp
	addSpaceAfterRight *regexp.Regexp

	swapQuotedPart      *regexp.Regexp
	swapQuotedSentence  *regexp.Regexp
	swapParagraphStart  *regexp.Regexp
	swapAfterSentence   *regexp.Regexp
	swapAfterQuoted     *regexp.Regexp

	introDash      *regexp.Regexp
	introSpacing   *regexp.Regexp
	trailingDash   *regexp.Regexp
	paragraphDash  *regexp.Regexp
	sentenceDash   *regexp.Regexp
}

var dqCache sync.Map // locale ID -> *dqPatterns

func doubleQuotePatterns(p *locale.Profile) *dqPatterns {
	if cached, ok := dqCache.Load(p.ID); ok {
		return cached.(*dqPatterns)
	}

	lq := regexp.QuoteMeta(p.DoubleQuoteOpen)
	rq := regexp.QuoteMeta(p.DoubleQuoteClose)
	dashes := chars.Hyphen + chars.EnDash + chars.EmDash

	dq := &dqPatterns{
		spaceAfterLeft:  regexp.MustCompile(`(` + lq + `)([` + chars.Spaces + `])`),
		spaceBeforeRight: regexp.MustCompile(`([` + chars.Spaces + `])(` + rq + `)`),
		addSpaceBeforeLeft: regexp.MustCompile(
			`([` + chars.SentencePunctuation + chars.AllChars + `])([` + lq + `])`),
		addSpaceAfterRight: regexp.MustCompile(
			`([` + rq + `])([` + chars.AllChars + `])`),

		swapQuotedPart: regexp.MustCompile(
			`([^` + chars.SentencePunctuation + `])([` + chars.Spaces + `])(` + lq + `)` +
				`([^` + rq + `]+?)([^` + chars.RomanNumerals + chars.ClosingBrackets + `])` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])(` + rq + `)`),
		swapQuotedSentence: regexp.MustCompile(
			`([^` + chars.SentencePunctuation + `])([` + chars.Spaces + `])(` + lq + `)` +
				`(.+?)([^` + chars.RomanNumerals + `])(` + rq + `)` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])([` + chars.Spaces + `])` +
				`([` + chars.LowercaseChars + `])`),
		swapParagraphStart: regexp.MustCompile(
			`(?m)(^` + lq + `[^` + rq + `]+?[^` + chars.RomanNumerals + `])(` + rq + `)` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])(\B)`),
		swapAfterSentence: regexp.MustCompile(
			`([` + chars.SentencePunctuation + `][` + chars.Spaces + `]` + lq +
				`[^` + rq + `]+?[^` + chars.RomanNumerals + `])(` + rq + `)` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])(\B)`),
		swapAfterQuoted: regexp.MustCompile(
			`([` + chars.SentencePunctuation + `][` + rq + `][` + chars.Spaces + `]` + lq +
				`[^` + rq + `]+?[^` + chars.RomanNumerals + `])(` + rq + `)` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])(\B)`),

		introDash: regexp.MustCompile(
			`([` + chars.AllChars + `])[,:;]?[` + chars.Spaces + `]*[` + dashes + `][` +
				chars.Spaces + `]*([` + lq + `].+?[` + rq + `])`),
		introSpacing: regexp.MustCompile(
			`([` + chars.AllChars + `])[,:;][` + chars.Spaces + `]*([` + lq + `].+?[` + rq + `])`),
		trailingDash: regexp.MustCompile(
			`([` + lq + `].+?[` + rq + `])[` + chars.Spaces + `]*[` + dashes + `][` +
				chars.Spaces + `]*([` + chars.AllChars + `])`),
		paragraphDash: regexp.MustCompile(
			`(?m)^[` + chars.Spaces + `]*[` + dashes + `][` + chars.Spaces + `]*([` +
				lq + `].+?[` + rq + `])`),
		sentenceDash: regexp.MustCompile(
			`([` + chars.TerminalPunctuation + chars.Ellipsis + `])[` + chars.Spaces + `]+[` +
				dashes + `][` + chars.Spaces + `]*([` + lq + `].+?[` + rq + `])`),
	}

	dqCache.Store(p.ID, dq)
	return dq
}

// identifyDoublePrimes tags inch/arcsecond marks after 1-3 digit numbers.
// A quote adept closing a quoted passage that ends in a number is first
// swapped behind the terminal punctuation so it is not mistaken for a prime.
func identifyDoublePrimes(text string) string {
	text = doublePrimeSwapRe.ReplaceAllString(text, "${1}${2}${3}${4}${6}${5}")
	return doublePrimeInchesRe.ReplaceAllString(text, "${1}${2}"+chars.MarkerDoublePrime)
}

// identifyDoubleQuotePairs tags matched quote pairs. Quotes wrapping a bare
// number are handled first so the closing quote is not kept as a prime.
func identifyDoubleQuotePairs(text string) string {
	text = quotedNumberRe.ReplaceAllString(text,
		chars.MarkerLeftDoubleQuote+"${2}"+chars.MarkerRightDoubleQuote)
	return doubleQuotePairRe.ReplaceAllString(text,
		chars.MarkerLeftDoubleQuote+"${2}"+chars.MarkerRightDoubleQuote)
}

func identifyUnpairedDoubleQuotes(text string) string {
	text = unpairedLeftDoubleQuoteRe.ReplaceAllString(text,
		chars.MarkerUnpairedLeftDoubleQuote+"${2}")
	text = unpairedRightDoubleQuoteRe.ReplaceAllString(text,
		"${1}"+chars.MarkerUnpairedRightDoubleQuote)
	return unidentifiedDoubleQuoteRe.ReplaceAllString(text, "${1}")
}

// promotePrimesToQuotePairs rescues passages like "Localhost 3000" where the
// closing quote was tagged as inches: an unpaired quote facing a prime across
// some content is really a quote pair.
func promotePrimesToQuotePairs(text string) string {
	text = unpairedLeftThenPrimeRe.ReplaceAllString(text,
		chars.MarkerLeftDoubleQuote+"${2}"+chars.MarkerRightDoubleQuote)
	return primeThenUnpairedRightRe.ReplaceAllString(text,
		chars.MarkerLeftDoubleQuote+"${2}"+chars.MarkerRightDoubleQuote)
}

// placeLocaleDoubleQuotes translates the markers to the locale's glyphs.
func placeLocaleDoubleQuotes(text string, p *locale.Profile) string {
	r := strings.NewReplacer(
		chars.MarkerDoublePrime, chars.DoublePrime,
		chars.MarkerLeftDoubleQuote, p.DoubleQuoteOpen,
		chars.MarkerUnpairedLeftDoubleQuote, p.DoubleQuoteOpen,
		chars.MarkerRightDoubleQuote, p.DoubleQuoteClose,
		chars.MarkerUnpairedRightDoubleQuote, p.DoubleQuoteClose,
	)
	return r.Replace(text)
}

// consolidateSpacesAroundDoubleQuotes trims spaces inside a quote pair and
// before a double prime, then restores the spaces a quote needs outside.
func consolidateSpacesAroundDoubleQuotes(text string, p *locale.Profile) string {
	dq := doubleQuotePatterns(p)
	text = dq.spaceAfterLeft.ReplaceAllString(text, "${1}")
	text = dq.spaceBeforeRight.ReplaceAllString(text, "${2}")
	text = spaceBeforeDoublePrimeRe.ReplaceAllString(text, "${2}")
	text = dq.addSpaceBeforeLeft.ReplaceAllString(text, "${1} ${2}")
	text = whitespace.AddNBSPAfterPreposition(text, p)
	text = dq.addSpaceAfterRight.ReplaceAllString(text, "${1} ${2}")
	return text
}

// fixDirectSpeechIntro normalizes the punctuation introducing direct speech:
// a comma in en-us, a colon elsewhere. Dashes standing in for the intro are
// consolidated, dashes trailing the quote are dropped.
func fixDirectSpeechIntro(text string, p *locale.Profile) string {
	intro := ":"
	if p.ID == "en-us" {
		intro = ","
	}
	dq := doubleQuotePatterns(p)
	text = dq.introDash.ReplaceAllString(text, "${1}"+intro+" ${2}")
	text = dq.introSpacing.ReplaceAllString(text, "${1}"+intro+" ${2}")
	text = dq.trailingDash.ReplaceAllString(text, "${1} ${2}")
	text = dq.paragraphDash.ReplaceAllString(text, "${1}")
	text = dq.sentenceDash.ReplaceAllString(text, "${1} ${2}")
	return text
}

// swapQuotesAndTerminalPunctuation places terminal punctuation outside the
// quotes for a quoted part of a sentence and inside for a fully quoted
// sentence. Regnal numbers (Karel IV.) keep their period inside.
func swapQuotesAndTerminalPunctuation(text string, p *locale.Profile) string {
	dq := doubleQuotePatterns(p)
	text = dq.swapQuotedPart.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}")
	text = dq.swapQuotedSentence.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}${8}${9}")
	text = dq.swapParagraphStart.ReplaceAllString(text, "${1}${3}${2}${4}")
	text = dq.swapAfterSentence.ReplaceAllString(text, "${1}${3}${2}${4}")
	text = dq.swapAfterQuoted.ReplaceAllString(text, "${1}${3}${2}${4}")
	return text
}

// FixDoubleQuotes corrects double quotes and double primes: strip extra
// punctuation around quote adepts, tag primes and quote pairs with markers,
// translate markers to locale glyphs, then fix spacing, direct speech intros
// and punctuation placement. Code ticks and other protected spans are
// already out of the text by the time this runs.
func FixDoubleQuotes(text string, p *locale.Profile) string {
	text = extraPunctuationBeforeQuotesRe.ReplaceAllString(text, "${1}${2}${4}")
	text = extraPunctuationAfterQuotesRe.ReplaceAllString(text, "${1}${2}${3}")
	text = identifyDoublePrimes(text)
	text = identifyDoubleQuotePairs(text)
	text = identifyUnpairedDoubleQuotes(text)
	text = promotePrimesToQuotePairs(text)
	text = placeLocaleDoubleQuotes(text, p)
	text = consolidateSpacesAroundDoubleQuotes(text, p)
	text = fixDirectSpeechIntro(text, p)
	text = swapQuotesAndTerminalPunctuation(text, p)
	return text
}
