// Package chars holds the character classes and glyph constants shared by the
// typography rule engines. Letter classes are regex fragments (not full
// patterns) covering Latin plus the non-Latin letters used by the supported
// locales.
package chars

// Non-Latin letters used across the supported locales (Czech, Slovak, German,
// Rusyn/Cyrillic).
const (
	NonLatinLowercase = "áäčďéěíĺľňóôöőŕřšťúüűůýžабвгґдезіийклмнопрстуфъыьцчжшїщёєюяхö"
	NonLatinUppercase = "ÁÄČĎÉĚÍĹĽŇÓÔÖŐŔŘŠŤÚÜŰŮÝŽАБВГҐДЕЗІИЙКЛМНОПРСТУФХЪЫЬЦЧЖШЇЩЁЄЮЯХ"
)

// Regex character-class fragments for letters.
const (
	LowercaseChars = "a-z" + NonLatinLowercase
	UppercaseChars = "A-Z" + NonLatinUppercase
	AllChars       = LowercaseChars + UppercaseChars
)

// Space characters.
const (
	Space      = " "
	NBSP       = "\u00a0"
	HairSpace  = "\u200a"
	NarrowNBSP = "\u202f"
	Spaces     = Space + NBSP + HairSpace + NarrowNBSP
)

// Punctuation fragments.
const (
	TerminalPunctuation      = `\.\!\?`
	SentencePausePunctuation = `\,\:\;`
	SentencePunctuation      = SentencePausePunctuation + TerminalPunctuation
	OpeningBrackets          = `\(\[\{`
	ClosingBrackets          = `\)\]\}`
)

// Dashes and related glyphs.
const (
	Ellipsis = "…"
	Hyphen   = "-"
	EnDash   = "–"
	EmDash   = "—"
	Slash    = "/"
)

// Symbols.
const (
	Degree                  = "°"
	MultiplicationSign      = "×"
	Ampersand               = "&"
	SectionSign             = "§"
	ParagraphSign           = "¶"
	Copyright               = "©"
	SoundRecordingCopyright = "℗"
	RegisteredTrademark     = "®"
	ServiceMark             = "℠"
	Trademark               = "™"
	Plus                    = "+"
	Minus                   = "−"
	PlusMinus               = "±"
	Percent                 = "%"
	Permille                = "‰"
	Permyriad               = "‱"
	NumberSign              = "#"
	NumeroSign              = "№"
)

// RomanNumerals are the letters that may form a Roman numeral.
const RomanNumerals = "IVXLCDM"

// Quote-adjacent glyphs.
const (
	Apostrophe  = "’"
	SinglePrime = "′"
	DoublePrime = "″"
	Backtick    = "`"
)

// Intra-pass markers, taken from the reserved private-use range (input
// containing that range is rejected before any rule runs). The quote rules
// first classify every quote-ish character into one of these markers and
// translate them to locale glyphs at the end of the pass; the dash rule uses
// a marker to survive its iterative number-range replacement.
const (
	MarkerLeftDoubleQuote          = "\uE100"
	MarkerRightDoubleQuote         = "\uE101"
	MarkerUnpairedLeftDoubleQuote  = "\uE102"
	MarkerUnpairedRightDoubleQuote = "\uE103"
	MarkerDoublePrime              = "\uE104"
	MarkerLeftSingleQuote          = "\uE105"
	MarkerRightSingleQuote         = "\uE106"
	MarkerUnpairedLeftSingleQuote  = "\uE107"
	MarkerUnpairedRightSingleQuote = "\uE108"
	MarkerApostrophe               = "\uE109"
	MarkerSinglePrime              = "\uE10A"
	MarkerEnDash                   = "\uE10B"
)
