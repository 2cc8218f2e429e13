package cjk

import "unicode/utf8"

// WordSegmenter is the word-break mode contract: a Tokenizer that may hold
// scoped resources (a loaded dictionary, a handle to a native
// morphological analyzer) released via Close. Per the base spec, failure
// to construct a WordSegmenter is not fatal — callers fall back to
// NGramTokenizer instead of failing CJK tokenization outright.
type WordSegmenter interface {
	Tokenizer
	Close() error
}

// defaultDictionary is a small built-in set of multi-character CJK words
// used by DictionarySegmenter when the caller doesn't supply its own.
// It exists to exercise word-break mode end to end without requiring an
// external morphological analyzer; production deployments wanting real
// segmentation quality should supply a WordSegmenter backed by one (e.g.
// an ICU break iterator or a MeCab/kagome-style tokenizer) instead.
var defaultDictionary = []string{
	"中国", "中国人", "日本", "日本语", "東京", "北京", "大学", "学生",
	"電話", "電子", "計算機", "人工知能", "自然語言", "処理",
}

// DictionarySegmenter implements word-break mode with greedy longest-match
// segmentation against a fixed dictionary, falling back to single-
// character tokens when nothing in the dictionary matches at a position.
// Tokens it emits always carry NgramLen 0, per the "whole word" contract.
type DictionarySegmenter struct {
	words    map[string]struct{}
	maxRunes int
}

// NewDictionarySegmenter builds a segmenter over words. An empty or nil
// slice still produces a usable segmenter that falls back to emitting
// every code point as its own one-character token.
func NewDictionarySegmenter(words []string) *DictionarySegmenter {
	s := &DictionarySegmenter{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
		if n := utf8.RuneCountInString(w); n > s.maxRunes {
			s.maxRunes = n
		}
	}
	if s.maxRunes == 0 {
		s.maxRunes = 1
	}
	return s
}

// NewDefaultDictionarySegmenter builds a DictionarySegmenter over the
// package's small built-in dictionary.
func NewDefaultDictionarySegmenter() *DictionarySegmenter {
	return NewDictionarySegmenter(defaultDictionary)
}

// Tokenize implements Tokenizer with greedy longest-match segmentation.
func (s *DictionarySegmenter) Tokenize(run []rune) []Token {
	if len(run) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(run))
	for i := 0; i < len(run); {
		matched := 1
		for length := s.maxRunes; length > 1; length-- {
			if i+length > len(run) {
				continue
			}
			candidate := string(run[i : i+length])
			if _, ok := s.words[candidate]; ok {
				matched = length
				break
			}
		}
		tokens = append(tokens, Token{Text: string(run[i : i+matched]), NgramLen: 0})
		i += matched
	}
	return tokens
}

// Close releases the segmenter's resources. DictionarySegmenter holds none,
// so this is always nil, but the method exists so DictionarySegmenter
// satisfies WordSegmenter alongside resource-backed implementations.
func (s *DictionarySegmenter) Close() error {
	return nil
}

// NewWordSegmenter constructs the default word-break segmenter. It is
// written to return an error so callers follow the same
// construct-or-fall-back-to-n-gram pattern a resource-backed
// implementation would require; the built-in dictionary segmenter never
// actually fails.
func NewWordSegmenter() (WordSegmenter, error) {
	return NewDefaultDictionarySegmenter(), nil
}
