// Package locale provides the read-only registry of locale profiles. The
// registry is built once at package init from compiled-in data and validated
// there; a malformed profile is a programming error and fails the process at
// load time rather than surfacing mid-pipeline.
package locale

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/typograf/core/errors"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// Quote glyphs used by the supported locales.
const (
	leftDoubleQuote       = "“" // “
	rightDoubleQuote      = "”" // ”
	leftSingleQuote       = "‘" // ‘
	rightSingleQuote      = "’" // ’
	doubleLow9Quote       = "„" // „
	singleLow9Quote       = "‚" // ‚
	leftGuillemet         = "«" // «
	rightGuillemet        = "»" // »
	leftSingleGuillemet   = "‹" // ‹
	rightSingleGuillemet  = "›" // ›
)

// Profile bundles the language-specific glyphs and spacing rules for one
// locale. Profiles are immutable once the registry is built.
type Profile struct {
	ID string

	DoubleQuoteOpen  string
	DoubleQuoteClose string
	SingleQuoteOpen  string
	SingleQuoteClose string

	// OrdinalIndicator is a regex fragment matching the locale's ordinal
	// suffix ("st|nd|rd|th" for en-us, `\.` elsewhere).
	OrdinalIndicator string
	// RomanOrdinalIndicator is the fragment after Roman numerals; empty for
	// locales that do not mark Roman ordinals (en-us).
	RomanOrdinalIndicator string

	// Separator spaces inserted after the day and month segments of an
	// ordinal date (12. 12. 2017).
	OrdinalDateFirstSpace  string
	OrdinalDateSecondSpace string

	// SpaceBeforePercent is empty for locales that set % tight to the number.
	SpaceBeforePercent string

	DashChar        string
	DashSpaceBefore string
	DashSpaceAfter  string

	// SpaceAfterAbbreviation separates abbreviated words (e. g., z. B.);
	// empty for en-us.
	SpaceAfterAbbreviation string

	SpaceAfterCopyright      string
	SpaceAfterSoundRecording string
	SpaceAfterNumeroSign     string
	SpaceAfterSectionSign    string
	SpaceAfterParagraphSign  string
}

// TerminalQuotes returns the combined closing quote glyphs, used as a regex
// class fragment by the punctuation rules.
func (p *Profile) TerminalQuotes() string {
	return p.DoubleQuoteClose + p.SingleQuoteClose
}

// Fingerprint returns the BLAKE3 hash of the profile's canonical
// serialization. Two builds with identical locale data produce identical
// fingerprints, so the hash is a cheap way to diff locale data across
// releases.
func (p *Profile) Fingerprint() string {
	var b strings.Builder
	fields := []string{
		p.ID,
		p.DoubleQuoteOpen, p.DoubleQuoteClose, p.SingleQuoteOpen, p.SingleQuoteClose,
		p.OrdinalIndicator, p.RomanOrdinalIndicator,
		p.OrdinalDateFirstSpace, p.OrdinalDateSecondSpace,
		p.SpaceBeforePercent,
		p.DashChar, p.DashSpaceBefore, p.DashSpaceAfter,
		p.SpaceAfterAbbreviation,
		p.SpaceAfterCopyright, p.SpaceAfterSoundRecording,
		p.SpaceAfterNumeroSign, p.SpaceAfterSectionSign, p.SpaceAfterParagraphSign,
	}
	for _, f := range fields {
		fmt.Fprintf(&b, "%d:%s;", len(f), f)
	}
	sum := blake3.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

var profiles = map[string]*Profile{
	"en-us": {
		ID:                       "en-us",
		DoubleQuoteOpen:          leftDoubleQuote,
		DoubleQuoteClose:         rightDoubleQuote,
		SingleQuoteOpen:          leftSingleQuote,
		SingleQuoteClose:         rightSingleQuote,
		OrdinalIndicator:         "st|nd|rd|th",
		RomanOrdinalIndicator:    "",
		OrdinalDateFirstSpace:    chars.NBSP,
		OrdinalDateSecondSpace:   chars.NBSP,
		SpaceBeforePercent:       "",
		DashChar:                 chars.EmDash,
		DashSpaceBefore:          "",
		DashSpaceAfter:           "",
		SpaceAfterAbbreviation:   "",
		SpaceAfterCopyright:      chars.NBSP,
		SpaceAfterSoundRecording: chars.NBSP,
		SpaceAfterNumeroSign:     chars.NarrowNBSP,
		SpaceAfterSectionSign:    chars.NarrowNBSP,
		SpaceAfterParagraphSign:  chars.NarrowNBSP,
	},
	"de-de": {
		ID:                       "de-de",
		DoubleQuoteOpen:          doubleLow9Quote,
		DoubleQuoteClose:         leftDoubleQuote, // German „…“ style
		SingleQuoteOpen:          singleLow9Quote,
		SingleQuoteClose:         leftSingleQuote,
		OrdinalIndicator:         `\.`,
		RomanOrdinalIndicator:    `\.`,
		OrdinalDateFirstSpace:    chars.NBSP,
		OrdinalDateSecondSpace:   chars.Space, // nbsp after day, space after month
		SpaceBeforePercent:       chars.NarrowNBSP,
		DashChar:                 chars.EnDash,
		DashSpaceBefore:          chars.HairSpace,
		DashSpaceAfter:           chars.HairSpace,
		SpaceAfterAbbreviation:   chars.NBSP,
		SpaceAfterCopyright:      chars.NBSP,
		SpaceAfterSoundRecording: chars.NBSP,
		SpaceAfterNumeroSign:     chars.NarrowNBSP,
		SpaceAfterSectionSign:    chars.NarrowNBSP,
		SpaceAfterParagraphSign:  chars.NarrowNBSP,
	},
	"cs": {
		ID:                       "cs",
		DoubleQuoteOpen:          doubleLow9Quote,
		DoubleQuoteClose:         leftDoubleQuote,
		SingleQuoteOpen:          singleLow9Quote,
		SingleQuoteClose:         leftSingleQuote,
		OrdinalIndicator:         `\.`,
		RomanOrdinalIndicator:    `\.`,
		OrdinalDateFirstSpace:    chars.NBSP,
		OrdinalDateSecondSpace:   chars.NBSP,
		SpaceBeforePercent:       chars.NBSP,
		DashChar:                 chars.EnDash,
		DashSpaceBefore:          chars.NBSP,
		DashSpaceAfter:           chars.Space,
		SpaceAfterAbbreviation:   chars.NBSP,
		SpaceAfterCopyright:      chars.Space, // cs sets © off with an ordinary space
		SpaceAfterSoundRecording: chars.Space,
		SpaceAfterNumeroSign:     chars.NarrowNBSP,
		SpaceAfterSectionSign:    chars.NarrowNBSP,
		SpaceAfterParagraphSign:  chars.NarrowNBSP,
	},
	"sk": {
		ID:                       "sk",
		DoubleQuoteOpen:          doubleLow9Quote,
		DoubleQuoteClose:         leftDoubleQuote,
		SingleQuoteOpen:          singleLow9Quote,
		SingleQuoteClose:         leftSingleQuote,
		OrdinalIndicator:         `\.`,
		RomanOrdinalIndicator:    `\.`,
		OrdinalDateFirstSpace:    chars.NBSP,
		OrdinalDateSecondSpace:   chars.NBSP,
		SpaceBeforePercent:       chars.NBSP,
		DashChar:                 chars.EmDash,
		DashSpaceBefore:          chars.HairSpace,
		DashSpaceAfter:           chars.HairSpace,
		SpaceAfterAbbreviation:   chars.NBSP,
		SpaceAfterCopyright:      chars.NBSP,
		SpaceAfterSoundRecording: chars.NBSP,
		SpaceAfterNumeroSign:     chars.NarrowNBSP,
		SpaceAfterSectionSign:    chars.NarrowNBSP,
		SpaceAfterParagraphSign:  chars.NarrowNBSP,
	},
	"rue": {
		ID:                       "rue",
		DoubleQuoteOpen:          leftGuillemet,
		DoubleQuoteClose:         rightGuillemet,
		SingleQuoteOpen:          leftSingleGuillemet,
		SingleQuoteClose:         rightSingleGuillemet,
		OrdinalIndicator:         `\.`,
		RomanOrdinalIndicator:    `\.`,
		OrdinalDateFirstSpace:    chars.NBSP,
		OrdinalDateSecondSpace:   chars.NBSP,
		SpaceBeforePercent:       chars.NBSP,
		DashChar:                 chars.EmDash,
		DashSpaceBefore:          chars.HairSpace,
		DashSpaceAfter:           chars.HairSpace,
		SpaceAfterAbbreviation:   chars.NBSP,
		SpaceAfterCopyright:      chars.NBSP,
		SpaceAfterSoundRecording: chars.NBSP,
		SpaceAfterNumeroSign:     chars.NarrowNBSP,
		SpaceAfterSectionSign:    chars.NarrowNBSP,
		SpaceAfterParagraphSign:  chars.NarrowNBSP,
	},
}

var ids []string

func init() {
	for id, p := range profiles {
		if err := validate(id, p); err != nil {
			panic(err)
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
}

// validate checks that a profile defines every field the rule engines
// require. Fields that are legitimately empty for some locales (dash spaces,
// abbreviation space, percent space, Roman ordinal indicator) are exempt.
func validate(id string, p *Profile) error {
	if p.ID != id {
		return fmt.Errorf("locale %q: profile ID %q does not match registry key", id, p.ID)
	}
	required := map[string]string{
		"DoubleQuoteOpen":          p.DoubleQuoteOpen,
		"DoubleQuoteClose":         p.DoubleQuoteClose,
		"SingleQuoteOpen":          p.SingleQuoteOpen,
		"SingleQuoteClose":         p.SingleQuoteClose,
		"OrdinalIndicator":         p.OrdinalIndicator,
		"OrdinalDateFirstSpace":    p.OrdinalDateFirstSpace,
		"OrdinalDateSecondSpace":   p.OrdinalDateSecondSpace,
		"DashChar":                 p.DashChar,
		"SpaceAfterCopyright":      p.SpaceAfterCopyright,
		"SpaceAfterSoundRecording": p.SpaceAfterSoundRecording,
		"SpaceAfterNumeroSign":     p.SpaceAfterNumeroSign,
		"SpaceAfterSectionSign":    p.SpaceAfterSectionSign,
		"SpaceAfterParagraphSign":  p.SpaceAfterParagraphSign,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("locale %q: missing required field %s", id, field)
		}
	}
	return nil
}

// Get returns the profile for the given locale identifier. Unknown
// identifiers fail with an UnknownLocaleError; there is no implicit
// fallback locale.
func Get(id string) (*Profile, error) {
	p, ok := profiles[strings.ToLower(id)]
	if !ok {
		return nil, errors.NewUnknownLocale(id, IDs())
	}
	return p, nil
}

// IDs returns the sorted list of supported locale identifiers.
func IDs() []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
