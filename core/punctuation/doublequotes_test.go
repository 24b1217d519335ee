package punctuation

import (
	"testing"

	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

const doublePrime = chars.DoublePrime

// TestFixDoubleQuotesExtraPunctuation verifies that stray pause punctuation
// around a closing quote is dropped, except after regnal numbers.
func TestFixDoubleQuotesExtraPunctuation(t *testing.T) {
	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		lq, rq := p.DoubleQuoteOpen, p.DoubleQuoteClose

		tests := map[string]string{
			lq + "Hey!," + rq + " she said":  lq + "Hey!" + rq + " she said",
			lq + "Hey?:" + rq + " she said":  lq + "Hey?" + rq + " she said",
			lq + "Hey.;" + rq + " she said":  lq + "Hey." + rq + " she said",
			lq + "Hey!" + rq + ", she said":  lq + "Hey!" + rq + " she said",
			lq + "Hey." + rq + ". she said":  lq + "Hey." + rq + " she said",
			lq + "Hey?" + rq + "! she said":  lq + "Hey?" + rq + " she said",

			// Regnal numbers keep the period and the following comma
			"Byl to " + lq + "Karel IV." + rq + ", ktery": "Byl to " + lq + "Karel IV." + rq + ", ktery",
		}

		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixDoubleQuotesPrimes verifies inches and arcseconds after numbers
// become a double prime rather than a quote.
func TestFixDoubleQuotesPrimes(t *testing.T) {
	singlePrime := chars.SinglePrime

	tests := map[string]string{
		"12" + singlePrime + " 45\"":   "12" + singlePrime + " 45" + doublePrime,
		"12" + singlePrime + " 45”":    "12" + singlePrime + " 45" + doublePrime,
		"12" + singlePrime + " 45“":    "12" + singlePrime + " 45" + doublePrime,
		"12''":                         "12" + doublePrime,
		"12′′":                         "12" + doublePrime,
		"3° 5" + singlePrime + " 30\"": "3° 5" + singlePrime + " 30" + doublePrime,
		"He was 12\".":                 "He was 12" + doublePrime + ".",
	}

	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}

		// A quoted passage ending in a number keeps its quote.
		input := "\"He was 12\"."
		want := p.DoubleQuoteOpen + "He was 12." + p.DoubleQuoteClose
		if got := FixDoubleQuotes(input, p); got != want {
			t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
		}
	}
}

// TestFixDoubleQuotesPairs verifies straight quote pairs take the locale's
// glyphs, including pairs around bare numbers and number-final passages.
func TestFixDoubleQuotesPairs(t *testing.T) {
	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		lq, rq := p.DoubleQuoteOpen, p.DoubleQuoteClose

		tests := map[string]string{
			"\"quoted material\" around":  lq + "quoted material" + rq + " around",
			"\"3\" is a number":           lq + "3" + rq + " is a number",
			"\"Conference 2020\" and \"something in quotes\".": lq + "Conference 2020" + rq + " and " + lq + "something in quotes" + rq + ".",
			"Level 3 \"with\" word": "Level 3 " + lq + "with" + rq + " word",
		}

		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixDoubleQuotesUnpaired verifies lone quotes resolve by their side, and
// a quote floating between spaces is dropped.
func TestFixDoubleQuotesUnpaired(t *testing.T) {
	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		lq, rq := p.DoubleQuoteOpen, p.DoubleQuoteClose

		tests := map[string]string{
			"There is \"unpaired quote in this sentence.": "There is " + lq + "unpaired quote in this sentence.",
			"So it ended with unpaired quote\"":           "So it ended with unpaired quote" + rq,
			"word \" word":                                "word word",
		}

		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixDoubleQuotesSpacing verifies spaces inside the pair are trimmed and
// missing spaces outside are restored.
func TestFixDoubleQuotesSpacing(t *testing.T) {
	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		lq, rq := p.DoubleQuoteOpen, p.DoubleQuoteClose

		tests := map[string]string{
			"\" quoted material \"":       lq + "quoted material" + rq,
			"This word\"nice\"word mix.":  "This word " + lq + "nice" + rq + " word mix.",
		}

		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixDirectSpeechIntro verifies the intro punctuation before direct
// speech: a comma in en-us, a colon elsewhere, consolidating intro dashes.
func TestFixDirectSpeechIntro(t *testing.T) {
	tests := []struct {
		localeID string
		input    string
		want     string
	}{
		{"en-us", "He said: \"Here we go.\"", "He said, “Here we go.”"},
		{"en-us", "She said - \"Hello.\"", "She said, “Hello.”"},
		{"cs", "He said: \"Here we go.\"", "He said: „Here we go.“"},
		{"cs", "She said - \"Hello.\"", "She said: „Hello.“"},
		{"rue", "She said - \"Hello.\"", "She said: «Hello.»"},
	}

	for _, tt := range tests {
		p := mustProfile(t, tt.localeID)
		if got := FixDoubleQuotes(tt.input, p); got != tt.want {
			t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", tt.localeID, tt.input, got, tt.want)
		}
	}
}

// TestSwapQuotesAndTerminalPunctuation verifies terminal punctuation lands
// outside a quoted part of a sentence and inside a fully quoted sentence.
func TestSwapQuotesAndTerminalPunctuation(t *testing.T) {
	for _, id := range locale.IDs() {
		p := mustProfile(t, id)
		lq, rq := p.DoubleQuoteOpen, p.DoubleQuoteClose

		tests := map[string]string{
			// Quoted part: period moves outside
			"a \"quoted part.\" here": "a " + lq + "quoted part" + rq + ". here",

			// Fully quoted sentence at paragraph start: period moves inside
			"\"He was ok\". She continued.": lq + "He was ok." + rq + " She continued.",

			// Fully quoted sentence after a sentence: period moves inside
			"It happened. \"She said hello\". And went on.": "It happened. " + lq + "She said hello." + rq + " And went on.",
		}

		for input, want := range tests {
			if got := FixDoubleQuotes(input, p); got != want {
				t.Errorf("[%s] FixDoubleQuotes(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}
