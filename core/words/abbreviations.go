package words

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// Single-word abbreviations that bind to the following or preceding word
// with a non-breaking space. Matching combines all locales so that, say,
// a German abbreviation in Czech text is still spaced correctly.
var singleWordAbbreviations = map[string][]string{
	"en-us": {"p", "pp", "no", "vol"},
	"de-de": {
		"Bhf", "ca", "Di", "Do", "Fr", "geb", "gest", "Hbf", "Mi", "Mo",
		"Nr", "S", "Sa", "So", "St", "Stk", "u", "usw", "z",
	},
	"cs":  {"č", "fol", "např", "odst", "par", "r", "s", "str", "sv", "tj", "tzv"},
	"sk":  {"č", "fol", "napr", "odst", "par", "r", "s", "str", "sv", "tj", "tzv"},
	"rue": {"ч", "с", "стр"},
}

// Multi-word abbreviations, stored without periods; "e g" stands for
// "e.g." and so on.
var multiWordAbbreviations = map[string][]string{
	"en-us": {"U S", "e g", "i e", "a m", "p m"},
	"de-de": {
		"b w", "d h", "d i", "e V", "Ges m b H", "n Chr", "n u Z",
		"s a", "s o", "s u", "u a m", "u a", "u ä", "u Ä", "u dgl",
		"u U", "u z", "u zw", "v a", "v Chr", "v u Z", "z B", "z T", "z Zt",
	},
	"cs":  {"hl m", "n l", "p n l", "př n l"},
	"sk":  {"hl m", "n l", "p n l", "pr n l", "s a", "s l", "t č", "t j", "zodp red"},
	"rue": {"т зн"},
}

const (
	// An initial: an uppercase letter, an optional second letter, a period
	// and an optional space.
	initialPattern = `([` + chars.UppercaseChars + `][` + chars.AllChars + `]?\.)` +
		`([` + chars.Spaces + `]?)`
	// A full name: two or more letters not ending with a period.
	fullNamePattern = `([` + chars.AllChars + `]{2,}[^\.])`
)

var (
	oneInitialRe    = regexp.MustCompile(initialPattern + fullNamePattern)
	twoInitialsRe   = regexp.MustCompile(initialPattern + initialPattern + fullNamePattern)
	threeInitialsRe = regexp.MustCompile(initialPattern + initialPattern + initialPattern + fullNamePattern)
)

// fixInitials binds name initials to the following name. A single initial
// gets a non-breaking space before the name; between consecutive initials
// the locale's abbreviation space is used and an ordinary space separates
// the last initial from the name.
func fixInitials(text string, p *locale.Profile) string {
	abbr := p.SpaceAfterAbbreviation
	text = oneInitialRe.ReplaceAllString(text, "${1}"+chars.NBSP+"${3}")
	text = twoInitialsRe.ReplaceAllString(text, "${1}"+abbr+"${3} ${5}")
	text = threeInitialsRe.ReplaceAllString(text, "${1}"+abbr+"${3}"+abbr+"${5} ${7}")
	return text
}

type multiWordPattern struct {
	beforeWord *regexp.Regexp
	standalone *regexp.Regexp
	count      int
}

// mwCache holds the compiled multi-word patterns per profile ID. Only the
// standalone boundary depends on the locale (its opening quotes), but
// caching both keeps the lookup in one place.
var mwCache sync.Map

func multiWordPatterns(p *locale.Profile) []multiWordPattern {
	if v, ok := mwCache.Load(p.ID); ok {
		return v.([]multiWordPattern)
	}

	precedingBoundary := `([^` + chars.AllChars + chars.EnDash + chars.EmDash + `]|^)`
	followingWord := `([` + chars.AllChars + `\d])`
	// Letters, digits, opening quotes, backticks and symbols (emoji) do
	// not count as a standalone boundary.
	standaloneBoundary := `([^` + chars.AllChars + `\d` +
		p.DoubleQuoteOpen + p.SingleQuoteOpen + chars.Backtick + `\p{So}]|$)`

	var all []string
	seen := make(map[string]bool)
	for _, id := range []string{"en-us", "de-de", "cs", "sk", "rue"} {
		for _, abbr := range multiWordAbbreviations[id] {
			if !seen[abbr] {
				seen[abbr] = true
				all = append(all, abbr)
			}
		}
	}

	patterns := make([]multiWordPattern, 0, len(all))
	for _, abbr := range all {
		parts := strings.Fields(abbr)
		if len(parts) < 2 {
			continue
		}
		var b strings.Builder
		for _, part := range parts {
			b.WriteString(`(` + regexp.QuoteMeta(part) + `)(\.)([` + chars.Spaces + `]?)`)
		}
		patterns = append(patterns, multiWordPattern{
			beforeWord: regexp.MustCompile(`(?i)` + precedingBoundary + b.String() + followingWord),
			standalone: regexp.MustCompile(`(?i)` + precedingBoundary + b.String() + standaloneBoundary),
			count:      len(parts),
		})
	}

	mwCache.Store(p.ID, patterns)
	return patterns
}

// multiWordTemplate builds the replacement for a multi-word abbreviation:
// the abbreviation space joins the inner words and tail follows the last
// period. Each abbreviation word occupies three capture groups.
func multiWordTemplate(count int, abbrSpace, tail string) string {
	var b strings.Builder
	b.WriteString("${1}")
	for i := 0; i < count-1; i++ {
		fmt.Fprintf(&b, "${%d}.%s", 2+i*3, abbrSpace)
	}
	fmt.Fprintf(&b, "${%d}.%s${%d}", 2+(count-1)*3, tail, 2+count*3)
	return b.String()
}

// fixMultipleWordAbbreviations normalizes spacing inside multi-word
// abbreviations, first when a word follows (e.g. something) and then when
// the abbreviation stands at the end of a phrase (Praha, hl. m.).
func fixMultipleWordAbbreviations(text string, p *locale.Profile) string {
	abbr := p.SpaceAfterAbbreviation
	for _, mw := range multiWordPatterns(p) {
		text = mw.beforeWord.ReplaceAllString(text, multiWordTemplate(mw.count, abbr, " "))
	}
	for _, mw := range multiWordPatterns(p) {
		text = mw.standalone.ReplaceAllString(text, multiWordTemplate(mw.count, abbr, ""))
	}
	return text
}

var (
	singleWordBeforeRes []*regexp.Regexp
	singleWordAfterRes  []*regexp.Regexp
)

func init() {
	var all []string
	seen := make(map[string]bool)
	for _, id := range []string{"en-us", "de-de", "cs", "sk", "rue"} {
		for _, abbr := range singleWordAbbreviations[id] {
			if !seen[abbr] {
				seen[abbr] = true
				all = append(all, abbr)
			}
		}
	}
	// Longer abbreviations first so that, say, "usw" wins over "u".
	sort.Slice(all, func(i, j int) bool {
		if len(all[i]) != len(all[j]) {
			return len(all[i]) > len(all[j])
		}
		return all[i] < all[j]
	})

	precedingBoundary := `([^` + chars.AllChars + chars.EnDash + chars.EmDash + chars.NBSP + `\.]|^)`
	followingWord := `([` + chars.AllChars + `\d]+)([^\.]|$)`
	precedingWord := `([` + chars.AllChars + `\d])([` + chars.Spaces + `])`
	followingBoundary := `([^` + chars.Spaces + chars.AllChars + `\d]|$)`

	for _, abbr := range all {
		abbrPat := `(` + regexp.QuoteMeta(abbr) + `)(\.)([` + chars.Spaces + `]?)`
		singleWordBeforeRes = append(singleWordBeforeRes,
			regexp.MustCompile(`(?i)`+precedingBoundary+abbrPat+followingWord))
		singleWordAfterRes = append(singleWordAfterRes,
			regexp.MustCompile(`(?i)`+precedingWord+abbrPat+followingBoundary))
	}
}

// fixSingleWordAbbreviations binds single-word abbreviations to their
// neighbor with a non-breaking space, first forward (str. 38) and then
// backward (10 str.).
func fixSingleWordAbbreviations(text string) string {
	for _, re := range singleWordBeforeRes {
		text = re.ReplaceAllString(text, "${1}${2}${3}"+chars.NBSP+"${5}${6}")
	}
	for _, re := range singleWordAfterRes {
		text = re.ReplaceAllString(text, "${1}"+chars.NBSP+"${3}${4}${5}${6}")
	}
	return text
}

// FixAbbreviations fixes spacing around initials, multi-word abbreviations
// and single-word abbreviations.
func FixAbbreviations(text string, p *locale.Profile) string {
	text = fixInitials(text, p)
	text = fixMultipleWordAbbreviations(text, p)
	text = fixSingleWordAbbreviations(text)
	return text
}
