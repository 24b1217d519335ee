package locale

import (
	"encoding/hex"
	"testing"

	"github.com/FocuswithJustin/typograf/core/errors"
	"github.com/FocuswithJustin/typograf/internal/chars"
)

// TestGetKnownLocales verifies every registered identifier resolves to its
// profile, case-insensitively.
func TestGetKnownLocales(t *testing.T) {
	for _, id := range IDs() {
		p, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if p.ID != id {
			t.Errorf("Get(%q).ID = %q", id, p.ID)
		}
	}

	p, err := Get("EN-US")
	if err != nil {
		t.Fatalf("Get(%q): %v", "EN-US", err)
	}
	if p.ID != "en-us" {
		t.Errorf("Get(%q).ID = %q, want %q", "EN-US", p.ID, "en-us")
	}
}

// TestGetUnknownLocale verifies lookups outside the supported set fail with a
// typed error naming the supported identifiers.
func TestGetUnknownLocale(t *testing.T) {
	_, err := Get("fr-fr")
	if !errors.Is(err, errors.ErrUnknownLocale) {
		t.Fatalf("Get(%q) error = %v, want ErrUnknownLocale", "fr-fr", err)
	}

	var ule *errors.UnknownLocaleError
	if !errors.As(err, &ule) {
		t.Fatalf("Get(%q) error type = %T, want *UnknownLocaleError", "fr-fr", err)
	}
	if ule.Locale != "fr-fr" {
		t.Errorf("error locale = %q, want %q", ule.Locale, "fr-fr")
	}
	if len(ule.Supported) != len(IDs()) {
		t.Errorf("error supported = %v, want %v", ule.Supported, IDs())
	}
}

// TestIDs verifies the identifier list is sorted and callers get a copy.
func TestIDs(t *testing.T) {
	ids := IDs()
	if len(ids) != 5 {
		t.Fatalf("IDs() = %v, want 5 identifiers", ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs() not sorted: %v", ids)
		}
	}

	ids[0] = "mutated"
	if IDs()[0] == "mutated" {
		t.Error("IDs() exposes internal storage")
	}
}

// TestProfileGlyphs spot-checks the quote and dash data per locale.
func TestProfileGlyphs(t *testing.T) {
	tests := []struct {
		id          string
		doubleOpen  string
		doubleClose string
		dash        string
		dashBefore  string
	}{
		{"en-us", "“", "”", chars.EmDash, ""},
		{"de-de", "„", "“", chars.EnDash, chars.HairSpace},
		{"cs", "„", "“", chars.EnDash, chars.NBSP},
		{"sk", "„", "“", chars.EmDash, chars.HairSpace},
		{"rue", "«", "»", chars.EmDash, chars.HairSpace},
	}

	for _, tt := range tests {
		p, err := Get(tt.id)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.id, err)
		}
		if p.DoubleQuoteOpen != tt.doubleOpen || p.DoubleQuoteClose != tt.doubleClose {
			t.Errorf("[%s] double quotes = %q %q, want %q %q",
				tt.id, p.DoubleQuoteOpen, p.DoubleQuoteClose, tt.doubleOpen, tt.doubleClose)
		}
		if p.DashChar != tt.dash || p.DashSpaceBefore != tt.dashBefore {
			t.Errorf("[%s] dash = %q with before-space %q, want %q with %q",
				tt.id, p.DashChar, p.DashSpaceBefore, tt.dash, tt.dashBefore)
		}
	}
}

// TestTerminalQuotes verifies the combined closing-glyph fragment.
func TestTerminalQuotes(t *testing.T) {
	tests := map[string]string{
		"en-us": "”’",
		"cs":    "“‘",
		"rue":   "»›",
	}
	for id, want := range tests {
		p, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if got := p.TerminalQuotes(); got != want {
			t.Errorf("[%s] TerminalQuotes() = %q, want %q", id, got, want)
		}
	}
}

// TestFingerprint verifies fingerprints are stable, well formed and distinct
// across locales.
func TestFingerprint(t *testing.T) {
	seen := make(map[string]string)
	for _, id := range IDs() {
		p, err := Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}

		fp := p.Fingerprint()
		if fp != p.Fingerprint() {
			t.Errorf("[%s] Fingerprint() not stable", id)
		}
		if len(fp) != 64 {
			t.Errorf("[%s] Fingerprint() length = %d, want 64", id, len(fp))
		}
		if _, err := hex.DecodeString(fp); err != nil {
			t.Errorf("[%s] Fingerprint() not hex: %v", id, err)
		}
		if prev, ok := seen[fp]; ok {
			t.Errorf("locales %s and %s share a fingerprint", prev, id)
		}
		seen[fp] = id
	}
}
