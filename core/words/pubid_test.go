package words

import (
	"testing"

	"github.com/FocuswithJustin/typograf/internal/chars"
)

const nbsp = chars.NBSP

// TestFixISSN verifies ISSN normalization: uppercase prefix, non-breaking
// space, plain hyphen between the digit groups.
func TestFixISSN(t *testing.T) {
	tests := map[string]string{
		"ISSN 0000 - 0000": "ISSN" + nbsp + "0000-0000",
		"Issn 0000 - 0000": "ISSN" + nbsp + "0000-0000",
		"issn 0000 - 0000": "ISSN" + nbsp + "0000-0000",
		"ISSN 0000—0000":   "ISSN" + nbsp + "0000-0000",
		"ISSN: 0000 - 0000": "ISSN:" + nbsp + "0000-0000",
		"ISSN:0000 - 0000":  "ISSN:" + nbsp + "0000-0000",
		"ISSN 0000-0000":    "ISSN" + nbsp + "0000-0000",
		"issn 0000-0000":    "ISSN" + nbsp + "0000-0000",
		"ISSN: 0000-0000":   "ISSN:" + nbsp + "0000-0000",
		"ISSN 0000 – 0000":  "ISSN" + nbsp + "0000-0000",
		"ISSN 1234-5678":    "ISSN" + nbsp + "1234-5678",
		"ISSN 2049-3630":    "ISSN" + nbsp + "2049-3630",
	}

	for input, want := range tests {
		if got := fixISSN(input); got != want {
			t.Errorf("fixISSN(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixISBN10 verifies ISBN-10 normalization including the X check digit.
func TestFixISBN10(t *testing.T) {
	tests := map[string]string{
		"ISBN 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "80-902734-1-6",
		"Isbn 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "80-902734-1-6",
		"isbn 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "80-902734-1-6",
		"ISBN 80—902734—1—6":        "ISBN" + nbsp + "80-902734-1-6",
		"ISBN: 80 - 902734 - 1 - 6": "ISBN:" + nbsp + "80-902734-1-6",
		"ISBN:80 - 902734 - 1 - 6":  "ISBN:" + nbsp + "80-902734-1-6",
		"ISBN:0-9752298-0-X":        "ISBN:" + nbsp + "0-9752298-0-X",
		"ISBN 80-902734-1-6":        "ISBN" + nbsp + "80-902734-1-6",
		"isbn 80-902734-1-6":        "ISBN" + nbsp + "80-902734-1-6",
		"ISBN: 80-902734-1-6":       "ISBN:" + nbsp + "80-902734-1-6",
		"ISBN 80 – 902734 – 1 – 6":  "ISBN" + nbsp + "80-902734-1-6",
		"ISBN 0-596-52068-9":        "ISBN" + nbsp + "0-596-52068-9",
		"ISBN 0 - 596 - 52068 - X":  "ISBN" + nbsp + "0-596-52068-X",
	}

	for input, want := range tests {
		if got := fixISBN10(input); got != want {
			t.Errorf("fixISBN10(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixISBN13 verifies ISBN-13 normalization with five digit groups.
func TestFixISBN13(t *testing.T) {
	tests := map[string]string{
		"ISBN 978 - 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "978-80-902734-1-6",
		"Isbn 978 - 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "978-80-902734-1-6",
		"isbn 978 - 80 - 902734 - 1 - 6":  "ISBN" + nbsp + "978-80-902734-1-6",
		"ISBN 978 - 80—902734—1—6":        "ISBN" + nbsp + "978-80-902734-1-6",
		"ISBN: 978 - 80 - 902734 - 1 - 6": "ISBN:" + nbsp + "978-80-902734-1-6",
		"ISBN:978 - 80 - 902734 - 1 - 6":  "ISBN:" + nbsp + "978-80-902734-1-6",
		"ISBN:978 - 0-9752298-0-X":        "ISBN:" + nbsp + "978-0-9752298-0-X",
		"ISBN 978-80-902734-1-6":          "ISBN" + nbsp + "978-80-902734-1-6",
		"isbn 978-80-902734-1-6":          "ISBN" + nbsp + "978-80-902734-1-6",
		"ISBN: 978-80-902734-1-6":         "ISBN:" + nbsp + "978-80-902734-1-6",
		"ISBN 978 – 80 – 902734 – 1 – 6":  "ISBN" + nbsp + "978-80-902734-1-6",
		"ISBN 978-0-596-52068-7":          "ISBN" + nbsp + "978-0-596-52068-7",
		"ISBN 978-3-16-148410-0":          "ISBN" + nbsp + "978-3-16-148410-0",
	}

	for input, want := range tests {
		if got := fixISBN13(input); got != want {
			t.Errorf("fixISBN13(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixBareISBN verifies hyphenation of prefixless ISBN-like numbers.
func TestFixBareISBN(t *testing.T) {
	tests := map[string]string{
		"978 - 80 - 902734 - 1 - 6":  "978-80-902734-1-6",
		"978- 80- 902734- 1- 6":      "978-80-902734-1-6",
		"978 -80 -902734 -1 -6":      "978-80-902734-1-6",
		"978 - 80—902734—1—6":        "978-80-902734-1-6",
		"978 - 0-9752298-0-X":        "978-0-9752298-0-X",
		"978 - 99921 - 58 - 10 - 7":  "978-99921-58-10-7",
		"978 - 9971 - 5 - 0210 - 0":  "978-9971-5-0210-0",
		"978 - 960 - 425 - 059 - 0":  "978-960-425-059-0",
		"978 - 85 - 359 - 0277 - 5":  "978-85-359-0277-5",
		"978 - 1 - 84356 - 028 - 3":  "978-1-84356-028-3",
		"978 - 0 - 684 - 84328 - 5":  "978-0-684-84328-5",
		"978 - 0 - 8044 - 2957 - X":  "978-0-8044-2957-X",
		"978 - 0 - 85131 - 041 - 9":  "978-0-85131-041-9",
		"978 - 93 - 86954 - 21 - 4":  "978-93-86954-21-4",
		"978 - 0 - 943396 - 04 - 2":  "978-0-943396-04-2",
		"978 - 0 - 9752298 - 0 - X":  "978-0-9752298-0-X",
		"978-80-902734-1-6":          "978-80-902734-1-6",
		"978 – 80 – 902734 – 1 – 6":  "978-80-902734-1-6",
		"978-0-596-52068-7":          "978-0-596-52068-7",
		"978 - 0 - 596 - 52068 - 7":  "978-0-596-52068-7",
		"978-3-16-148410-0":          "978-3-16-148410-0",
		"978-80-902734-1-X":          "978-80-902734-1-X",
		"979-10-90636-07-1":          "979-10-90636-07-1",
	}

	for input, want := range tests {
		if got := fixBareISBN(input); got != want {
			t.Errorf("fixBareISBN(%q) = %q, want %q", input, got, want)
		}
	}
}

// TestFixPubID verifies the combined entry point.
func TestFixPubID(t *testing.T) {
	tests := map[string]string{
		"ISSN 1234-5678":         "ISSN" + nbsp + "1234-5678",
		"ISBN 80-902734-1-6":     "ISBN" + nbsp + "80-902734-1-6",
		"ISBN 978-80-902734-1-6": "ISBN" + nbsp + "978-80-902734-1-6",
		"See ISSN 1234-5678 and ISBN 978-80-902734-1-6.": "See ISSN" + nbsp + "1234-5678 and ISBN" + nbsp + "978-80-902734-1-6.",
		"This is regular text without any publication IDs.": "This is regular text without any publication IDs.",
		"": "",
	}

	for input, want := range tests {
		if got := FixPubID(input); got != want {
			t.Errorf("FixPubID(%q) = %q, want %q", input, got, want)
		}
	}
}
