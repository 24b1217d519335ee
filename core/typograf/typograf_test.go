package typograf

import (
	"testing"

	"github.com/FocuswithJustin/typograf/core/errors"
	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

const (
	ellipsis = chars.Ellipsis
	nbsp     = chars.NBSP
)

// TestFixTyposBasic verifies whitespace normalization across all locales.
func TestFixTyposBasic(t *testing.T) {
	tests := map[string]string{
		"Hello   world":   "Hello world",
		"Hello world   ":  "Hello world",
		"   Hello world":  "Hello world",
	}

	for _, id := range locale.IDs() {
		for input, want := range tests {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != want {
				t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixTyposEmptyInput verifies empty and whitespace-only input collapses
// to the empty string.
func TestFixTyposEmptyInput(t *testing.T) {
	for _, id := range locale.IDs() {
		for _, input := range []string{"", "   ", "\n\n\n"} {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != "" {
				t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, "")
			}
		}
	}
}

// TestFixTyposLocaleNormalization verifies identifiers resolve
// case-insensitively.
func TestFixTyposLocaleNormalization(t *testing.T) {
	for _, id := range []string{"EN-US", "En-Us", "en-us"} {
		got, err := FixTypos("Hello   world", id, DefaultOptions())
		if err != nil {
			t.Fatalf("FixTypos(locale %q): %v", id, err)
		}
		if got != "Hello world" {
			t.Errorf("FixTypos(locale %q) = %q, want %q", id, got, "Hello world")
		}
	}
}

// TestFixTyposUnknownLocale verifies an unsupported locale fails fast with
// the input returned unmodified.
func TestFixTyposUnknownLocale(t *testing.T) {
	input := "Hello   world"
	got, err := FixTypos(input, "invalid", DefaultOptions())
	if !errors.Is(err, errors.ErrUnknownLocale) {
		t.Fatalf("FixTypos(unknown locale) error = %v, want ErrUnknownLocale", err)
	}
	if got != input {
		t.Errorf("FixTypos(unknown locale) = %q, want input back unmodified", got)
	}
}

// TestOptionsValidate verifies KeepListIndent requires ShieldCodeBlocks.
func TestOptionsValidate(t *testing.T) {
	bad := Options{RemoveLines: true, ShieldCodeBlocks: false, KeepListIndent: true}
	input := "some text"
	got, err := FixTypos(input, "en-us", bad)
	if !errors.Is(err, errors.ErrOptionConflict) {
		t.Fatalf("FixTypos(conflicting options) error = %v, want ErrOptionConflict", err)
	}
	if got != input {
		t.Errorf("FixTypos(conflicting options) = %q, want input back unmodified", got)
	}

	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}
}

// TestFixTyposRemoveLines verifies the empty-line collapse option in both
// positions.
func TestFixTyposRemoveLines(t *testing.T) {
	input := "First paragraph.\n\n\nSecond paragraph."

	for _, id := range locale.IDs() {
		got, err := FixTypos(input, id, DefaultOptions())
		if err != nil {
			t.Fatalf("[%s] FixTypos: %v", id, err)
		}
		if want := "First paragraph.\nSecond paragraph."; got != want {
			t.Errorf("[%s] FixTypos(remove lines) = %q, want %q", id, got, want)
		}

		keep := DefaultOptions()
		keep.RemoveLines = false
		got, err = FixTypos(input, id, keep)
		if err != nil {
			t.Fatalf("[%s] FixTypos: %v", id, err)
		}
		if got != input {
			t.Errorf("[%s] FixTypos(keep lines) = %q, want %q", id, got, input)
		}
	}
}

// TestFixTyposKeepListIndent verifies indentation before markdown list
// markers survives only when asked for.
func TestFixTyposKeepListIndent(t *testing.T) {
	input := "   - list item"

	got, err := FixTypos(input, "en-us", DefaultOptions())
	if err != nil {
		t.Fatalf("FixTypos: %v", err)
	}
	if want := "- list item"; got != want {
		t.Errorf("FixTypos(default) = %q, want %q", got, want)
	}

	opts := DefaultOptions()
	opts.KeepListIndent = true
	got, err = FixTypos(input, "en-us", opts)
	if err != nil {
		t.Fatalf("FixTypos: %v", err)
	}
	if got != input {
		t.Errorf("FixTypos(keep list indent) = %q, want %q", got, input)
	}
}

// TestFixTyposPreservesTemplateVariables verifies template placeholders pass
// through every engine untouched.
func TestFixTyposPreservesTemplateVariables(t *testing.T) {
	tests := []string{
		"{{test-variable}}",
		"{{test-variable}} at the beginning of the sentence.",
		"And {{test-variable}} in the middle of the sentence.",
		"And at the end {{test-variable}}.",
		"Multiple {{var1}} and {{var2}} variables.",
	}

	for _, id := range locale.IDs() {
		for _, input := range tests {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != input {
				t.Errorf("[%s] FixTypos(%q) = %q, want unchanged", id, input, got)
			}
		}
	}
}

// TestFixTyposEllipsisInBrackets verifies the ellipsis and bracket spacing
// rules compose.
func TestFixTyposEllipsisInBrackets(t *testing.T) {
	tests := map[string]string{
		"quote [...]with parts left out":     "quote [" + ellipsis + "] with parts left out",
		"quote[...] with parts left out":     "quote [" + ellipsis + "] with parts left out",
		"quote [ ...] with parts left out":   "quote [" + ellipsis + "] with parts left out",
		"quote [.... ] with parts left out":  "quote [" + ellipsis + "] with parts left out",
		"quote [ ..... ] with parts left out": "quote [" + ellipsis + "] with parts left out",
		"quote[" + ellipsis + "] with parts left out": "quote [" + ellipsis + "] with parts left out",
	}

	for _, id := range locale.IDs() {
		for input, want := range tests {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != want {
				t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixTyposCompoundWordHyphens verifies suspended hyphenation survives,
// with the single-letter conjunction still glued to the next word.
func TestFixTyposCompoundWordHyphens(t *testing.T) {
	tests := map[string]string{
		"Ein- und Ausgang":       "Ein- und Ausgang",
		"ein- und ausschalten":   "ein- und ausschalten",
		"S- oder U-Bahn":         "S- oder U-Bahn",
		"R- and X-rated films":   "R- and X-rated films",
		"Softwareentwicklung, -verkauf und -wartung": "Softwareentwicklung, -verkauf und -wartung",
		"dvou- a trzipokojove byty": "dvou- a" + nbsp + "trzipokojove byty",
	}

	for _, id := range locale.IDs() {
		for input, want := range tests {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != want {
				t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, want)
			}
		}
	}
}

// TestFixTyposShieldsExceptions verifies URLs, emails, filenames and code
// spans come through the pipeline untouched.
func TestFixTyposShieldsExceptions(t *testing.T) {
	tests := []string{
		"Visit https://example.com for info",
		"Check http://example.com/path?query=1",
		"Contact user@example.com for help",
		"Open file.txt to view",
		"Run `make -- all` now",
		"`code with \"quotes\"`",
	}

	for _, id := range locale.IDs() {
		for _, input := range tests {
			got, err := FixTypos(input, id, DefaultOptions())
			if err != nil {
				t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
			}
			if got != input {
				t.Errorf("[%s] FixTypos(%q) = %q, want unchanged", id, input, got)
			}
		}
	}
}

// TestFixTyposRejectsReservedInput verifies reserved placeholder runes fail
// the call before any processing.
func TestFixTyposRejectsReservedInput(t *testing.T) {
	input := "bad \uE000 text"
	got, err := FixTypos(input, "en-us", DefaultOptions())
	if !errors.Is(err, errors.ErrReservedCodePoint) {
		t.Fatalf("FixTypos(reserved rune) error = %v, want ErrReservedCodePoint", err)
	}
	if got != input {
		t.Errorf("FixTypos(reserved rune) = %q, want input back unmodified", got)
	}
}

// TestFixTyposContractions verifies straight apostrophes in contractions take
// the typographic apostrophe.
func TestFixTyposContractions(t *testing.T) {
	apostrophe := chars.Apostrophe
	tests := map[string]string{
		"Because of this, it's common": "Because of this, it" + apostrophe + "s common",
		"don't do that":                "don" + apostrophe + "t do that",
		"I've been there":              "I" + apostrophe + "ve been there",
	}

	for input, want := range tests {
		got, err := FixTypos(input, "en-us", DefaultOptions())
		if err != nil {
			t.Fatalf("FixTypos(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("FixTypos(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixTyposLocaleQuotes verifies straight double quotes take each locale's
// glyphs end to end.
func TestFixTyposLocaleQuotes(t *testing.T) {
	for _, id := range locale.IDs() {
		p, err := locale.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}

		input := "\"Hello,\" she said."
		want := p.DoubleQuoteOpen + "Hello," + p.DoubleQuoteClose + " she said."
		got, err := FixTypos(input, id, DefaultOptions())
		if err != nil {
			t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
		}
		if got != want {
			t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, want)
		}
	}
}

// TestFixTyposOrdinalDate verifies day.month.year dates take the locale's
// segment spacing while version strings pass through.
func TestFixTyposOrdinalDate(t *testing.T) {
	for _, id := range locale.IDs() {
		p, err := locale.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}

		input := "12.12.2017"
		want := "12." + p.OrdinalDateFirstSpace + "12." + p.OrdinalDateSecondSpace + "2017"
		got, err := FixTypos(input, id, DefaultOptions())
		if err != nil {
			t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
		}
		if got != want {
			t.Errorf("[%s] FixTypos(%q) = %q, want %q", id, input, got, want)
		}

		got, err = FixTypos("3.0.0", id, DefaultOptions())
		if err != nil {
			t.Fatalf("[%s] FixTypos(3.0.0): %v", id, err)
		}
		if got != "3.0.0" {
			t.Errorf("[%s] FixTypos(%q) = %q, want unchanged", id, "3.0.0", got)
		}
	}
}

// TestFixTyposIdempotent verifies a second run over already-corrected text
// changes nothing, with and without line removal.
func TestFixTyposIdempotent(t *testing.T) {
	inputs := []string{
		"...",
		"Wait... what?",
		"And then...",
		"word - word",
		"word -- word",
		"2020-2021",
		"pages 10-20",
		"\"Hello\"",
		"\"Hello,\" she said.",
		"It's working",
		"5 x 4",
		"12x3",
		"5 x 4 x 3",
		"(c) 2020",
		"(r)",
		"(tm)",
		"§ 1",
		"§1",
		"№ 5",
		"+-5",
		"#5",
		"# 5",
		"Hello  world",
		" Leading space",
		"Trailing space ",
		"First.\n\n\nSecond.",
		"e.g.",
		"F. X. Šalda",
		"HELLO world",
		"( word )",
		"word(test)word",
		"Visit http://example.com for more info.",
		"Email: test@example.com",
		"File: document.pdf",
		"```code```",
		"`inline code`",
		"- list item",
		"> blockquote",
		"",
		"   ",
		"Single",
		".",
		"Příliš žluťoučký kůň",
		"Größe",
		"naïve café",
	}

	variants := []Options{DefaultOptions(), {RemoveLines: false, ShieldCodeBlocks: true}}

	for _, id := range locale.IDs() {
		for _, opts := range variants {
			for _, input := range inputs {
				first, err := FixTypos(input, id, opts)
				if err != nil {
					t.Fatalf("[%s] FixTypos(%q): %v", id, input, err)
				}
				second, err := FixTypos(first, id, opts)
				if err != nil {
					t.Fatalf("[%s] FixTypos(%q) second pass: %v", id, first, err)
				}
				if second != first {
					t.Errorf("[%s] not idempotent: %q -> %q -> %q", id, input, first, second)
				}
			}
		}
	}
}
