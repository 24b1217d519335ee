// Package typograf runs the full typography-correction pipeline: shield,
// whitespace, punctuation, symbols, words, non-breaking spaces, reinsert.
package typograf

import (
	"strings"
	"time"

	"github.com/FocuswithJustin/typograf/core/errors"
	"github.com/FocuswithJustin/typograf/core/locale"
	"github.com/FocuswithJustin/typograf/core/punctuation"
	"github.com/FocuswithJustin/typograf/core/shield"
	"github.com/FocuswithJustin/typograf/core/symbols"
	"github.com/FocuswithJustin/typograf/core/whitespace"
	"github.com/FocuswithJustin/typograf/core/words"
	"github.com/FocuswithJustin/typograf/internal/logging"
)

// Options controls the optional behaviors of a FixTypos run. The zero
// value disables everything; most callers want DefaultOptions.
type Options struct {
	// RemoveLines collapses runs of empty lines into a single newline.
	RemoveLines bool

	// ShieldCodeBlocks protects markdown code (fenced blocks and backtick
	// spans) from correction alongside URLs, emails and filenames.
	ShieldCodeBlocks bool

	// KeepListIndent preserves leading whitespace before markdown list
	// markers. Requires ShieldCodeBlocks.
	KeepListIndent bool
}

// DefaultOptions returns the options used when none are given: empty
// lines removed, code blocks shielded, list indentation not preserved.
func DefaultOptions() Options {
	return Options{
		RemoveLines:      true,
		ShieldCodeBlocks: true,
		KeepListIndent:   false,
	}
}

// Validate reports conflicting option combinations.
func (o Options) Validate() error {
	if o.KeepListIndent && !o.ShieldCodeBlocks {
		return errors.NewOptionConflict("KeepListIndent", "ShieldCodeBlocks",
			"list indentation is only meaningful for markdown input, which requires code-block shielding")
	}
	return nil
}

// FixTypos corrects the typography of text according to the given locale.
// Empty or whitespace-only input yields "". The input must not contain
// code points from the reserved range U+E000-U+E1FF. On any error the
// input is returned unmodified alongside the error.
func FixTypos(text, localeID string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return text, err
	}
	p, err := locale.Get(localeID)
	if err != nil {
		return text, err
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	start := time.Now()

	processed, spans, err := shield.Extract(text, opts.ShieldCodeBlocks)
	if err != nil {
		return text, err
	}

	if opts.RemoveLines {
		processed = whitespace.FixLines(processed)
	}

	// Ellipsis first: its patterns depend on the variable spacing that
	// FixSpaces would otherwise normalize away.
	processed = punctuation.FixEllipsis(processed, p)
	processed = whitespace.FixSpaces(processed, p, opts.KeepListIndent)

	processed = punctuation.FixPeriod(processed)
	processed = punctuation.FixDash(processed, p)
	processed = punctuation.FixDoubleQuotes(processed, p)
	processed = punctuation.FixSingleQuotes(processed, p)

	processed = symbols.FixMultiplicationSign(processed)
	processed = symbols.FixSectionSign(processed, p)
	processed = symbols.FixCopyrights(processed, p)
	processed = symbols.FixNumeroSign(processed, p)
	processed = symbols.FixPlusMinus(processed)
	processed = symbols.FixMarks(processed)
	processed = symbols.FixExponents(processed)
	processed = symbols.FixNumberSign(processed)

	processed = words.FixCase(processed)
	processed = words.FixPubID(processed)
	processed = words.FixAbbreviations(processed, p)

	processed = whitespace.FixNBSP(processed, p)

	out, err := shield.Reinsert(processed, spans)
	if err != nil {
		return text, err
	}

	logging.Fix(p.ID, len(text), len(out), len(spans), time.Since(start))
	return out, nil
}
