package cjk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Happy Path Tests
// =============================================================================

func TestNGramTokenizer_Ordering(t *testing.T) {
	t.Parallel()

	run := []rune("我爱中国")
	tokens := NGramTokenizer{}.Tokenize(run)

	want := []Token{
		{Text: "我", NgramLen: 1},
		{Text: "我爱", NgramLen: 2},
		{Text: "爱", NgramLen: 1},
		{Text: "爱中", NgramLen: 2},
		{Text: "中", NgramLen: 1},
		{Text: "中国", NgramLen: 2},
		{Text: "国", NgramLen: 1},
	}
	assert.Equal(t, want, tokens)
}

func TestNGramTokenizer_SingleCharRun(t *testing.T) {
	t.Parallel()

	tokens := NGramTokenizer{}.Tokenize([]rune("中"))
	assert.Equal(t, []Token{{Text: "中", NgramLen: 1}}, tokens)
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestNGramTokenizer_EmptyRun(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NGramTokenizer{}.Tokenize(nil))
	assert.Nil(t, NGramTokenizer{}.Tokenize([]rune{}))
}

func TestModeFromEnv_CachesFirstRead(t *testing.T) {
	t.Parallel()

	// ModeFromEnv caches a process-wide sync.Once value; this test only
	// verifies that repeated calls are stable and don't panic, since the
	// first real read happened whenever some earlier test (or none) ran.
	first := ModeFromEnv()
	second := ModeFromEnv()
	assert.Equal(t, first, second)
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "ngram", NGram.String())
	assert.Equal(t, "word", Word.String())
}
