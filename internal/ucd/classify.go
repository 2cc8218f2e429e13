// Package ucd implements the code-point predicates and classification
// tables the word tokenizer and CJK tokenizer scan against: word
// characters, whitespace, digits, CJK ideographs, intra-word infixes and
// suffixes, and Unicode simple case folding.
package ucd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxTermBytes is the longest UTF-8 term accepted by the word tokenizer;
// anything longer is dropped before it ever reaches the snippet engine.
const MaxTermBytes = 64

// MaxSuffixRunes bounds how many trailing suffix characters (+, #) a word
// body will absorb before the run is discarded.
const MaxSuffixRunes = 3

var lowerCaser = cases.Lower(language.Und)

// IsWordChar reports whether r participates in a word: letters, digits,
// connector punctuation and combining marks, per the Unicode word-break
// rules the tokenizer follows.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r)
}

// IsWhitespace reports whether r is whitespace.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsDigit reports whether r belongs to Unicode category Nd (decimal digit
// number), not the broader "is this a digit-like wordchar" test.
func IsDigit(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

// IsCJK reports whether r falls in one of the CJK blocks the CJK tokenizer
// decomposes specially: the Unified Ideographs and their extensions, the
// compatibility block, Hiragana, Katakana, and Hangul syllables.
func IsCJK(r rune) bool {
	return unicode.Is(cjkRangeTable, r)
}

// ToLower performs a Unicode simple case fold to lower case on a single
// code point, returning a string because case folding can (rarely) grow
// the byte length of a character.
func ToLower(r rune) string {
	return lowerCaser.String(string(r))
}

// AppendUTF8 appends r's UTF-8 encoding to buf.
func AppendUTF8(buf *strings.Builder, r rune) {
	buf.WriteRune(r)
}

// LowerString applies ToLower to every code point in s and concatenates the
// results, performing the whole-term case fold the state machine applies
// during normalization.
func LowerString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(ToLower(r))
	}
	return b.String()
}

// IGNORE is the sentinel returned by Infix/DigitInfix for code points that
// are absorbed into the surrounding word without being emitted (zero-width
// joiners and the like).
const IGNORE rune = -1

// Infix reports the infix code point to emit (possibly IGNORE) when r sits
// between two non-digit wordchars, and whether r is an infix at all.
// ’ (U+2019) and ‛ (U+201B) fold to a plain apostrophe.
func Infix(r rune) (rune, bool) {
	switch r {
	case '\'', '&', 0x00B7, 0x05F4, 0x2027:
		return r, true
	case 0x2019, 0x201B:
		return '\'', true
	}
	if isZeroWidthIgnorable(r) {
		return IGNORE, true
	}
	return 0, false
}

// DigitInfix reports the infix code point to emit (possibly IGNORE) when r
// sits between two digit wordchars.
func DigitInfix(r rune) (rune, bool) {
	switch r {
	case ',', '.', ';', 0x037E, 0x0589, 0x060D, 0x07F8, 0x2044, 0xFE10, 0xFE13, 0xFE14:
		return r, true
	}
	if isZeroWidthIgnorable(r) {
		return IGNORE, true
	}
	return 0, false
}

func isZeroWidthIgnorable(r rune) bool {
	return (r >= 0x200B && r <= 0x200D) || r == 0x2060 || r == 0xFEFF
}

// IsSuffix reports whether r is a word-suffix character (+, #).
func IsSuffix(r rune) bool {
	return r == '+' || r == '#'
}

// RuneLen returns the UTF-8 byte length of r.
func RuneLen(r rune) int {
	return utf8.RuneLen(r)
}
