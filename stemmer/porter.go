// Package stemmer provides snippet.Stemmer implementations.
package stemmer

import porterstemmer "github.com/blevesearch/go-porterstemmer"

// Porter is a snippet.Stemmer backed by the Porter stemming algorithm. It
// is a pure function of its input, as the engine's stemmer contract
// requires.
func Porter(term string) string {
	if term == "" {
		return term
	}
	return string(porterstemmer.StemWithoutLowerCasing([]rune(term)))
}
