package cjk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Happy Path Tests
// =============================================================================

func TestDictionarySegmenter_LongestMatch(t *testing.T) {
	t.Parallel()

	seg := NewDictionarySegmenter([]string{"中国", "中国人"})
	tokens := seg.Tokenize([]rune("中国人"))

	require.Len(t, tokens, 1)
	assert.Equal(t, "中国人", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].NgramLen)
}

func TestDictionarySegmenter_FallsBackToSingleChar(t *testing.T) {
	t.Parallel()

	seg := NewDictionarySegmenter([]string{"中国"})
	tokens := seg.Tokenize([]rune("人"))

	require.Len(t, tokens, 1)
	assert.Equal(t, "人", tokens[0].Text)
	assert.Equal(t, 0, tokens[0].NgramLen)
}

func TestDictionarySegmenter_MixedRun(t *testing.T) {
	t.Parallel()

	seg := NewDictionarySegmenter([]string{"中国"})
	tokens := seg.Tokenize([]rune("我中国人"))

	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
		assert.Equal(t, 0, tok.NgramLen)
	}
	assert.Equal(t, []string{"我", "中国", "人"}, texts)
}

func TestNewDefaultDictionarySegmenter_Close(t *testing.T) {
	t.Parallel()

	seg := NewDefaultDictionarySegmenter()
	assert.NoError(t, seg.Close())
}

func TestNewWordSegmenter_NeverFails(t *testing.T) {
	t.Parallel()

	seg, err := NewWordSegmenter()
	require.NoError(t, err)
	require.NotNil(t, seg)
	defer seg.Close()

	tokens := seg.Tokenize([]rune("中国"))
	require.NotEmpty(t, tokens)
}

// =============================================================================
// Edge Cases
// =============================================================================

func TestDictionarySegmenter_EmptyDictionary(t *testing.T) {
	t.Parallel()

	seg := NewDictionarySegmenter(nil)
	tokens := seg.Tokenize([]rune("中国"))

	require.Len(t, tokens, 2)
	assert.Equal(t, "中", tokens[0].Text)
	assert.Equal(t, "国", tokens[1].Text)
}

func TestDictionarySegmenter_EmptyRun(t *testing.T) {
	t.Parallel()

	seg := NewDefaultDictionarySegmenter()
	assert.Nil(t, seg.Tokenize(nil))
}
