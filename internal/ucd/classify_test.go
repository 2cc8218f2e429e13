package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Happy Path Tests
// =============================================================================

func TestIsWordChar(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWordChar('a'))
	assert.True(t, IsWordChar('Z'))
	assert.True(t, IsWordChar('5'))
	assert.True(t, IsWordChar('_'))
	assert.True(t, IsWordChar('中'))
	assert.False(t, IsWordChar(' '))
	assert.False(t, IsWordChar('.'))
	assert.False(t, IsWordChar('&'))
}

func TestIsWhitespace(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWhitespace(' '))
	assert.True(t, IsWhitespace('\t'))
	assert.True(t, IsWhitespace('\n'))
	assert.False(t, IsWhitespace('a'))
}

func TestIsDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDigit('0'))
	assert.True(t, IsDigit('9'))
	assert.False(t, IsDigit('a'))
	// Roman numeral code points are letter numbers (Nl), not category Nd.
	assert.False(t, IsDigit('Ⅷ'))
}

func TestIsCJK(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCJK('中'))
	assert.True(t, IsCJK('国'))
	assert.True(t, IsCJK('あ')) // hiragana
	assert.True(t, IsCJK('ア')) // katakana
	assert.True(t, IsCJK('한')) // hangul syllable
	assert.False(t, IsCJK('a'))
	assert.False(t, IsCJK('1'))
}

func TestToLower(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", ToLower('A'))
	assert.Equal(t, "a", ToLower('a'))
	assert.Equal(t, "ß", ToLower('ß')) // simple fold does not expand sharp s
}

func TestLowerString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", LowerString("HELLO"))
	assert.Equal(t, "café", LowerString("CAFÉ"))
	assert.Equal(t, "", LowerString(""))
}

func TestAppendUTF8(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	AppendUTF8(&b, 'h')
	AppendUTF8(&b, 'i')
	AppendUTF8(&b, '中')
	assert.Equal(t, "hi中", b.String())
}

// =============================================================================
// Infix / Suffix Table Tests
// =============================================================================

func TestInfix_Recognized(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'\'', '&', 0x00B7, 0x05F4, 0x2027} {
		got, ok := Infix(r)
		assert.True(t, ok, "rune %U should be an infix", r)
		assert.Equal(t, r, got)
	}
}

func TestInfix_CurlyQuotesFoldToApostrophe(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{0x2019, 0x201B} {
		got, ok := Infix(r)
		require.True(t, ok)
		assert.Equal(t, rune('\''), got)
	}
}

func TestInfix_ZeroWidthIsIgnoreSentinel(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{0x200B, 0x200C, 0x200D, 0x2060, 0xFEFF} {
		got, ok := Infix(r)
		require.True(t, ok)
		assert.Equal(t, IGNORE, got)
	}
}

func TestInfix_NotAnInfix(t *testing.T) {
	t.Parallel()

	_, ok := Infix(',')
	assert.False(t, ok, "comma is only a digit-digit infix")
}

func TestDigitInfix_Recognized(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{',', '.', ';', 0x037E, 0x0589, 0x060D, 0x07F8, 0x2044, 0xFE10, 0xFE13, 0xFE14} {
		got, ok := DigitInfix(r)
		assert.True(t, ok, "rune %U should be a digit infix", r)
		assert.Equal(t, r, got)
	}
}

func TestDigitInfix_NotGeneralInfix(t *testing.T) {
	t.Parallel()

	_, ok := DigitInfix('&')
	assert.False(t, ok)
}

func TestIsSuffix(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSuffix('+'))
	assert.True(t, IsSuffix('#'))
	assert.False(t, IsSuffix('-'))
}
