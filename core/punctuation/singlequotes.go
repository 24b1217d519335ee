package punctuation

import (
	"regexp"
	"strings"
	"sync"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/overlap"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// singleQuoteAdepts matches every character someone might have used as a
// single quote or apostrophe.
const singleQuoteAdepts = `‚|'|‘|’|ʼ|‛|´|` + "`" + `|′|‹|›`

// commonContractions are word pairs joined by 'n' (rock 'n' roll) where the
// quotes are really apostrophes.
var commonContractions = [][2]string{
	{"dead", "buried"},
	{"drill", "bass"},
	{"drum", "bass"},
	{"rock", "roll"},
	{"pick", "mix"},
	{"fish", "chips"},
	{"salt", "shake"},
	{"mac", "cheese"},
	{"pork", "beans"},
	{"drag", "drop"},
	{"rake", "scrape"},
	{"hook", "kill"},
}

const contractedWords = "cause|em|mid|midst|mongst|prentice|round|sblood|sdeath|sfoot|sheart|" +
	"shun|slid|slife|slight|snails|strewth|til|tis|twas|tween|twere|twill|twixt|twould"

var (
	contractionRes = func() []*regexp.Regexp {
		res := make([]*regexp.Regexp, len(commonContractions))
		for i, c := range commonContractions {
			res[i] = regexp.MustCompile(
				`(?i)(` + c[0] + `)([` + chars.Spaces + `]?)(` + singleQuoteAdepts + `)(n)(` +
					singleQuoteAdepts + `)([` + chars.Spaces + `]?)(` + c[1] + `)`)
		}
		return res
	}()

	contractedBeginningsRe = regexp.MustCompile(
		`(?i)(` + singleQuoteAdepts + `)(` + contractedWords + `)`)

	contractedEndsRe = regexp.MustCompile(
		`(?i)(\Bin)(` + singleQuoteAdepts + `)`)

	inWordContractionRe = regexp.MustCompile(
		`([\d` + chars.AllChars + `])(` + singleQuoteAdepts + `)+([` + chars.AllChars + `])`)

	contractedYearsRe = regexp.MustCompile(
		`([^0-9]|[A-Z][0-9])([` + chars.Spaces + `])(` + singleQuoteAdepts + `)([\d]{2})`)

	singlePrimeFeetRe = regexp.MustCompile(
		`(\d)([` + chars.Spaces + `]?)('|‘|’|‛|′)`)

	unpairedLeftSingleQuoteRe = regexp.MustCompile(
		`(^|[` + chars.Spaces + chars.EmDash + chars.EnDash + `])(` + singleQuoteAdepts +
			`|,)([` + chars.AllChars + chars.Ellipsis + `])`)

	unpairedRightSingleQuoteRe = regexp.MustCompile(
		`([` + chars.AllChars + `])([` + chars.SentencePunctuation + chars.Ellipsis + `])?(` +
			singleQuoteAdepts + `)([ ` + chars.SentencePunctuation + `])?`)

	singleQuotePairRe = regexp.MustCompile(
		`(` + chars.MarkerUnpairedLeftSingleQuote + `)(.*)(` + chars.MarkerUnpairedRightSingleQuote + `)`)

	singleWordPairRe = regexp.MustCompile(
		`(\B)(` + singleQuoteAdepts + `)([` + chars.AllChars + `]+)(` + singleQuoteAdepts + `)(\B)`)

	// Double quote glyphs delimiting already-fixed quoted passages; single
	// quote pairs are only resolved inside these.
	innerDoubleQuotesRe = regexp.MustCompile(`("|“|”|„|«|»)(.*?)("|“|”|„|«|»)`)

	residualAdeptsRe = regexp.MustCompile(`(` + singleQuoteAdepts + `)`)

	lsqThenPrimeRe = regexp.MustCompile(
		`(` + chars.MarkerUnpairedLeftSingleQuote + `)(.*?)(` + chars.MarkerSinglePrime + `)`)

	primeThenRsqRe = regexp.MustCompile(
		`(` + chars.MarkerSinglePrime + `)(.*?)(` + chars.MarkerUnpairedRightSingleQuote + `)`)

	spaceBeforeSinglePrimeRe = regexp.MustCompile(
		`([` + chars.Spaces + `])(` + chars.SinglePrime + `)`)
)

// sqPatterns holds the punctuation-swap regexes built from locale single
// quote glyphs. Same five cases as the double-quote swap.
type sqPatterns struct {
	swapQuotedPart     *regexp.Regexp
	swapQuotedSentence *regexp.Regexp
	swapParagraphStart *regexp.Regexp
	swapAfterSentence  *regexp.Regexp
	swapAfterQuoted    *regexp.Regexp
}

var sqCache sync.Map // locale ID -> *sqPatterns

func singleQuotePatterns(p *locale.Profile) *sqPatterns {
	if cached, ok := sqCache.Load(p.ID); ok {
		return cached.(*sqPatterns)
	}

	lq := regexp.QuoteMeta(p.SingleQuoteOpen)
	rq := regexp.QuoteMeta(p.SingleQuoteClose)

	sq := &sqPatterns{
		swapQuotedPart: regexp.MustCompile(
			`([^` + chars.SentencePunctuation + `])([` + chars.Spaces + `])(` + lq + `)` +
				`([^` + rq + `]+?)([^` + chars.RomanNumerals + `])` +
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
			`([` + chars.SentencePunctuation + `]` + rq + `[` + chars.Spaces + `]` + lq +
				`[^` + rq + `]+?[^` + chars.RomanNumerals + `])(` + rq + `)` +
				`([` + chars.TerminalPunctuation + chars.Ellipsis + `])(\B)`),
	}

	sqCache.Store(p.ID, sq)
	return sq
}

// identifyApostropheContractions tags the quote adepts that are really
// apostrophes: 'n' pairs, word-initial contractions ('em, 'cause), in-word
// contractions (don't, O'Doole), contracted years ('89) and -in' endings.
func identifyApostropheContractions(text string) string {
	for _, re := range contractionRes {
		text = re.ReplaceAllString(text,
			"${1}"+chars.NBSP+chars.MarkerApostrophe+"${4}"+chars.MarkerApostrophe+chars.NBSP+"${7}")
	}
	text = contractedBeginningsRe.ReplaceAllString(text, chars.MarkerApostrophe+"${2}")
	text = inWordContractionRe.ReplaceAllString(text, "${1}"+chars.MarkerApostrophe+"${3}")
	text = contractedYearsRe.ReplaceAllString(text, "${1}${2}"+chars.MarkerApostrophe+"${4}")
	text = contractedEndsRe.ReplaceAllString(text, "${1}"+chars.MarkerApostrophe)
	return text
}

// identifySinglePrimeAsFeet tags feet and arcminute marks after a number.
// A quote misread as feet ('Konference 2020') is rescued later by
// promoteSinglePrimesToQuotePairs.
func identifySinglePrimeAsFeet(text string) string {
	return singlePrimeFeetRe.ReplaceAllString(text, "${1}${2}"+chars.MarkerSinglePrime)
}

func identifyUnpairedLeftSingleQuote(text string) string {
	return unpairedLeftSingleQuoteRe.ReplaceAllString(text,
		"${1}"+chars.MarkerUnpairedLeftSingleQuote+"${3}")
}

func identifyUnpairedRightSingleQuote(text string) string {
	return unpairedRightSingleQuoteRe.ReplaceAllString(text,
		"${1}${2}"+chars.MarkerUnpairedRightSingleQuote+"${4}")
}

func identifySingleQuotePairs(text string) string {
	return singleQuotePairRe.ReplaceAllString(text,
		chars.MarkerLeftSingleQuote+"${2}"+chars.MarkerRightSingleQuote)
}

// identifySingleQuotePairAroundSingleWord handles 'word' even outside double
// quotes; a single quoted word is unambiguous enough.
func identifySingleQuotePairAroundSingleWord(text string) string {
	return singleWordPairRe.ReplaceAllString(text,
		"${1}"+chars.MarkerLeftSingleQuote+"${3}"+chars.MarkerRightSingleQuote+"${5}")
}

// identifySingleQuotesWithinDoubleQuotes resolves single quote pairs only
// inside double-quoted passages. Word-end apostrophes (jes') make unpaired
// single quotes too ambiguous to resolve in open text.
func identifySingleQuotesWithinDoubleQuotes(text string) string {
	return overlap.ReplaceAllSubmatchFunc(text, innerDoubleQuotesRe, func(g []string) string {
		content := g[2]
		content = identifyUnpairedLeftSingleQuote(content)
		content = identifyUnpairedRightSingleQuote(content)
		content = identifySingleQuotePairs(content)
		return g[1] + content + g[3]
	})
}

// promoteSinglePrimesToQuotePairs pairs an unpaired single quote with a
// single prime across content, the same rescue as for double primes.
func promoteSinglePrimesToQuotePairs(text string) string {
	text = lsqThenPrimeRe.ReplaceAllString(text,
		chars.MarkerLeftSingleQuote+"${2}"+chars.MarkerRightSingleQuote)
	return primeThenRsqRe.ReplaceAllString(text,
		chars.MarkerLeftSingleQuote+"${2}"+chars.MarkerRightSingleQuote)
}

func identifyResidualApostrophes(text string) string {
	return residualAdeptsRe.ReplaceAllString(text, chars.MarkerApostrophe)
}

// placeLocaleSingleQuotes translates the markers to glyphs: paired quotes to
// the locale's, everything unpaired to a typographic apostrophe.
func placeLocaleSingleQuotes(text string, p *locale.Profile) string {
	r := strings.NewReplacer(
		chars.MarkerSinglePrime, chars.SinglePrime,
		chars.MarkerApostrophe, chars.Apostrophe,
		chars.MarkerUnpairedLeftSingleQuote, chars.Apostrophe,
		chars.MarkerUnpairedRightSingleQuote, chars.Apostrophe,
		chars.MarkerLeftSingleQuote, p.SingleQuoteOpen,
		chars.MarkerRightSingleQuote, p.SingleQuoteClose,
	)
	return r.Replace(text)
}

func swapSingleQuotesAndTerminalPunctuation(text string, p *locale.Profile) string {
	sq := singleQuotePatterns(p)
	text = sq.swapQuotedPart.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}")
	text = sq.swapQuotedSentence.ReplaceAllString(text, "${1}${2}${3}${4}${5}${7}${6}${8}${9}")
	text = sq.swapParagraphStart.ReplaceAllString(text, "${1}${3}${2}${4}")
	text = sq.swapAfterSentence.ReplaceAllString(text, "${1}${3}${2}${4}")
	text = sq.swapAfterQuoted.ReplaceAllString(text, "${1}${3}${2}${4}")
	return text
}

// FixSingleQuotes corrects single quotes, single primes and apostrophes.
// Assumes double quotes were fixed first: single quote pairs are resolved
// only inside double-quoted passages, lone quoted words aside.
func FixSingleQuotes(text string, p *locale.Profile) string {
	text = identifyApostropheContractions(text)
	text = identifySinglePrimeAsFeet(text)
	text = identifySingleQuotePairAroundSingleWord(text)
	text = identifySingleQuotesWithinDoubleQuotes(text)
	text = promoteSinglePrimesToQuotePairs(text)
	text = identifyResidualApostrophes(text)
	text = placeLocaleSingleQuotes(text, p)
	text = swapSingleQuotesAndTerminalPunctuation(text, p)
	text = spaceBeforeSinglePrimeRe.ReplaceAllString(text, "${2}")
	return text
}
