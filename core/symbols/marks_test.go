package symbols

import "testing"

// TestFixRegisteredTrademark verifies (r) becomes ® tight against the
// preceding word.
func TestFixRegisteredTrademark(t *testing.T) {
	tests := map[string]string{
		"(r)":           "®",
		"(R)":           "®",
		"Company (r)":   "Company®",
		"Company ®":     "Company®",
		"Company  (r)":  "Company®",
		"Company   ®":   "Company®",

		// False positives
		"Item (R-1000)": "Item (R-1000)",
		"Section 7(r)":  "Section 7(r)",
	}

	for input, want := range tests {
		if got := FixMarks(input); got != want {
			t.Errorf("FixMarks(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixTrademark verifies (tm) becomes ™ tight against the preceding word.
func TestFixTrademark(t *testing.T) {
	tests := map[string]string{
		"(tm)":          "™",
		"(TM)":          "™",
		"Company (tm)":  "Company™",
		"Company ™":     "Company™",
		"Company   (tm)": "Company™",

		// False positives
		"Item (TM-1000)": "Item (TM-1000)",
		"Section 7(t)":   "Section 7(t)",
	}

	for input, want := range tests {
		if got := FixMarks(input); got != want {
			t.Errorf("FixMarks(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixServiceMark verifies (sm) becomes ℠ tight against the preceding word.
func TestFixServiceMark(t *testing.T) {
	tests := map[string]string{
		"(sm)":          "℠",
		"(SM)":          "℠",
		"Company (sm)":  "Company℠",
		"Company ℠":     "Company℠",
		"Company   ℠":   "Company℠",

		// False positives
		"Item (SM-1000)": "Item (SM-1000)",
		"Section 7(s)":   "Section 7(s)",
	}

	for input, want := range tests {
		if got := FixMarks(input); got != want {
			t.Errorf("FixMarks(%q) = %q, want %q", input, got, want)
		}
	}
}
