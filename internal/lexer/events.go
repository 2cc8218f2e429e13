package lexer

// EventSink receives the two event kinds the word tokenizer produces while
// scanning text: a completed term (possibly a CJK n-gram) or a non-word
// code point, each tagged with the term-position counter value current at
// the moment it was produced.
type EventSink interface {
	// AcceptTerm is called once per emitted token: ngramLen is 0 for
	// ordinary words and word-mode CJK tokens, or k>=1 for a CJK n-gram of
	// k characters.
	AcceptTerm(term string, pos uint32, ngramLen int)
	// AcceptNonwordChar is called once per non-word code point, in source
	// order, tagged with the term position current at the time.
	AcceptNonwordChar(r rune, pos uint32)
}
