// Package shield protects spans that typography rules must never touch:
// markdown code ticks, email addresses, URLs and filenames. Extract swaps
// each protected span for a placeholder built from reserved private-use
// runes; Reinsert restores the originals after the rule engines have run.
package shield

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/FocuswithJustin/typograf/core/errors"
	"github.com/FocuswithJustin/typograf/core/overlap"
)

// Kind labels what a shielded span contained.
type Kind int

const (
	KindCodeBlock Kind = iota
	KindEmail
	KindURL
	KindFilename
)

func (k Kind) String() string {
	switch k {
	case KindCodeBlock:
		return "code-block"
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	case KindFilename:
		return "filename"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Span is one extracted fragment, restored verbatim on reinsertion.
type Span struct {
	Kind     Kind
	Original string
}

// Placeholders are assembled from the reserved private-use range: an opening
// sentinel, the span index in displaced decimal digits, and a closing
// sentinel. Input containing any rune from the range is rejected up front, so
// a placeholder can never collide with legitimate text.
const (
	ReservedLo = '\uE000'
	ReservedHi = '\uE1FF'

	placeholderOpen  = '\uE000'
	placeholderClose = '\uE001'
	placeholderDigit = '\uE010' // '0' maps to U+E010, '9' to U+E019
)

// Priorities for the single overlap pass over inline exceptions. An email
// beats the URL pattern matching its domain half, and both beat a filename
// match inside them.
const (
	priorityEmail    = 30
	priorityURL      = 20
	priorityFilename = 10
)

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	doubleTickRe = regexp.MustCompile("(?s)``.*?``")
	singleTickRe = regexp.MustCompile("`[^`\n]+`")

	emailRe = regexp.MustCompile(`(?i)[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(?:\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+`)

	urlRe = regexp.MustCompile(`(?i)` +
		// optional protocol with optional user:pass@
		`(?:(?:https?|rtsp)://` +
		`(?:(?:[a-zA-Z0-9$\-_.+!*'(),;?&=]|(?:%[a-fA-F0-9]{2})){1,64}` +
		`(?::(?:[a-zA-Z0-9$\-_.+!*'(),;?&=]|(?:%[a-fA-F0-9]{2})){1,25})?@)?)?` +
		// domain with TLD, or IPv4
		`(?:(?:[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}\.)+(?:` + tldList + `)` +
		`|` + ipv4 + `)` +
		// optional port, path, query, anchor
		`(?::\d{1,5})?` +
		`(?:/(?:[a-zA-Z0-9;\\/?:@&=#~\-.+!*'(),_]|(?:%[a-fA-F0-9]{2}))*)?(?:\b|$)`)

	filenameRe = regexp.MustCompile(`(?i)\b[a-zA-Z0-9_%\-]+\.(?:` + fileExtensions + `)\b`)
)

const tldList = `(?:aero|arpa|asia|agency|a[cdefgilmnoqrstuwxz])|` +
	`(?:biz|b[abdefghijmnorstvwyz])|` +
	`(?:cat|cloud|com|company|coop|c[acdfghiklmnoruvxyz])|` +
	`(?:dev|d[ejkmoz])|` +
	`(?:edu|e[cegrstu])|` +
	`f[ijkmor]|` +
	`(?:gov|guide|g[abdefghilmnpqrstuwy])|` +
	`h[kmnrtu]|` +
	`(?:info|int|i[delmnoqrst])|` +
	`(?:jobs|j[emop])|` +
	`k[eghimnrwyz]|` +
	`l[abcikrstuvy]|` +
	`(?:mil|mobi|museum|m[acdghklmnopqrstuvwxyz])|` +
	`(?:name|net|n[acefgilopruz])|` +
	`(?:org|om|one)|` +
	`(?:pro|p[aefghklmnrstwy])|` +
	`qa|r[eouw]|` +
	`(?:shop|store|s[abcdeghijklmnortuvyz])|` +
	`(?:tel|travel|team|t[cdfghjklmnoprtvwz])|` +
	`u[agkmsyz]|` +
	`v[aceginu]|` +
	`(?:work|w[fs])|` +
	`(?:xyz)|` +
	`y[etu]|` +
	`z[amw]`

const ipv4 = `(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{1,2})\.` +
	`(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{1,2})\.` +
	`(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{1,2})\.` +
	`(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{1,2})`

const fileExtensions = `ai|asm|bat|bmp|c|cpp|cs|css|csv|dart|doc|docx|exe|gif|go|html|ics|` +
	`java|jpeg|jpg|js|json|key|kt|less|lua|log|md|mp4|odp|ods|odt|pdf|php|pl|png|ppt|pptx|psd|` +
	`py|r|rar|rb|rs|scala|scss|sh|svg|sql|swift|tar\.gz|tar|tex|tiff|ts|txt|vbs|xml|xls|xlsx|` +
	`yaml|yml|zip`

// placeholder renders the reserved-rune token for span index i.
func placeholder(i int) string {
	var b strings.Builder
	b.WriteRune(placeholderOpen)
	for _, d := range fmt.Sprintf("%d", i) {
		b.WriteRune(placeholderDigit + (d - '0'))
	}
	b.WriteRune(placeholderClose)
	return b.String()
}

// checkReserved rejects input that already contains runes from the reserved
// placeholder range.
func checkReserved(text string) error {
	for offset, r := range text {
		if r >= ReservedLo && r <= ReservedHi {
			return errors.NewReservedCodePoint(r, offset)
		}
	}
	return nil
}

// Extract replaces protected spans in text with placeholders and returns the
// rewritten text together with the extracted spans in placeholder order.
//
// Code ticks are taken out first, in three sequential passes (fenced, double,
// single) so inner backticks never split an outer block. Emails, URLs and
// filenames then compete in a single overlap-resolved pass: each pattern
// gathers its candidates and the higher-priority span wins any intersection.
func Extract(text string, shieldCodeBlocks bool) (string, []Span, error) {
	if err := checkReserved(text); err != nil {
		return "", nil, err
	}

	var spans []Span
	result := text

	if shieldCodeBlocks {
		for _, re := range []*regexp.Regexp{fencedCodeRe, doubleTickRe, singleTickRe} {
			result = re.ReplaceAllStringFunc(result, func(block string) string {
				spans = append(spans, Span{Kind: KindCodeBlock, Original: block})
				return placeholder(len(spans) - 1)
			})
		}
	}

	var cands []overlap.Candidate
	gather := func(re *regexp.Regexp, priority int, rule string) {
		cands = append(cands, overlap.Gather(result, re, priority, rule, func(groups []string) string {
			return "" // replacement assigned after arbitration
		})...)
	}
	gather(emailRe, priorityEmail, "shield/email")
	gather(urlRe, priorityURL, "shield/url")
	gather(filenameRe, priorityFilename, "shield/filename")

	accepted := overlap.Resolve(cands)
	for i := range accepted {
		kind := KindFilename
		switch accepted[i].Rule {
		case "shield/email":
			kind = KindEmail
		case "shield/url":
			kind = KindURL
		}
		spans = append(spans, Span{Kind: kind, Original: result[accepted[i].Start:accepted[i].End]})
		accepted[i].Replacement = placeholder(len(spans) - 1)
	}

	result, err := overlap.Apply(result, accepted)
	if err != nil {
		return "", nil, err
	}
	return result, spans, nil
}

var placeholderRe = regexp.MustCompile(string(placeholderOpen) + "[\uE010-\uE019]+" + string(placeholderClose))

// Reinsert restores the extracted spans. Every placeholder in text must
// resolve to a span and every span must be consumed exactly once; a mismatch
// means a correction rule corrupted a placeholder and aborts the call.
func Reinsert(text string, spans []Span) (string, error) {
	seen := make([]bool, len(spans))
	var badIndex bool
	restored := placeholderRe.ReplaceAllStringFunc(text, func(token string) string {
		i := 0
		for _, r := range token {
			if r >= placeholderDigit && r <= placeholderDigit+9 {
				i = i*10 + int(r-placeholderDigit)
			}
		}
		if i >= len(spans) || seen[i] {
			badIndex = true
			return token
		}
		seen[i] = true
		return spans[i].Original
	})
	if badIndex {
		return "", errors.NewInvariant("shield.Reinsert", "placeholder index out of range or duplicated")
	}
	for i, ok := range seen {
		if !ok {
			return "", errors.NewInvariant("shield.Reinsert",
				fmt.Sprintf("placeholder %d (%s) missing from processed text", i, spans[i].Kind))
		}
	}
	return restored, nil
}
