// Package lexer implements the word tokenizer: a finite-state scanner over
// UTF-8 text that recognizes acronyms, hands CJK runs off to a CJK
// tokenizer, accumulates ordinary word bodies across permitted infix
// punctuation, and absorbs a bounded run of trailing suffix characters,
// delivering AcceptTerm/AcceptNonwordChar events to an EventSink in source
// order.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/adalundhe/snippetgen/internal/cjk"
	"github.com/adalundhe/snippetgen/internal/ucd"
)

// Scanner drives a single left-to-right pass over UTF-8 input, applying
// the acronym, CJK handoff, word-body/infix, and suffix rules in that
// order for each token.
type Scanner struct {
	sink    EventSink
	termpos *uint32
	cjkTok  cjk.Tokenizer // nil when CJK decomposition is disabled
}

// NewScanner constructs a Scanner. termpos is a pointer into the owning
// engine's running state: the scanner increments it in place so that
// repeated calls to Run (one per accept_text call) continue the same
// counter, and so the engine's get_termpos/set_termpos/increase_termpos
// observe the scanner's advances directly. cjkTok may be nil, in which
// case CJK code points are scanned as ordinary wordchars.
func NewScanner(sink EventSink, termpos *uint32, cjkTok cjk.Tokenizer) *Scanner {
	return &Scanner{sink: sink, termpos: termpos, cjkTok: cjkTok}
}

func (s *Scanner) cjkActive() bool {
	return s.cjkTok != nil
}

func (s *Scanner) nextTermPos() uint32 {
	*s.termpos++
	return *s.termpos
}

// Run scans text start to finish, emitting events to the sink.
func (s *Scanner) Run(text string) {
	pos := 0
	n := len(text)

	for {
		ch, chSize, newPos, ok := s.advanceToWordStart(text, pos, n)
		if !ok {
			return
		}
		pos = newPos

		var term strings.Builder
		accepted := false

		if isASCIIUpper(ch) {
			acronym, newPos, ok := s.tryAcronym(text, pos)
			if ok {
				term.WriteString(acronym)
				pos = newPos
				accepted = true
			}
		}

		if !accepted {
			bodyEnd, skipSuffix, stop := s.scanWordBody(text, pos, ch, chSize, &term)
			if stop {
				return
			}
			pos = bodyEnd
			if !skipSuffix {
				pos = s.scanSuffix(text, pos, &term)
			}
		}

		if len(term.String()) > ucd.MaxTermBytes {
			continue
		}
		s.sink.AcceptTerm(term.String(), s.nextTermPos(), 0)
	}
}

// advanceToWordStart feeds every non-word code point to the sink and
// returns the first wordchar found along with its size in bytes. The
// caller's pos is advanced by the caller using the returned values; ok is
// false at end of input.
func (s *Scanner) advanceToWordStart(text string, pos int, n int) (rune, int, int, bool) {
	for pos < n {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if ucd.IsWordChar(r) {
			return r, size, pos, true
		}
		s.sink.AcceptNonwordChar(r, *s.termpos)
		pos += size
	}
	return 0, 0, pos, false
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// tryAcronym attempts to consume a sequence L.L.L[.] of single uppercase
// letters starting at pos. On success it returns the raw input substring
// spanning the consumed letters (original case, dots included, e.g.
// "U.N.C.L.E") rather than a transformed form: case folding happens later,
// uniformly, as part of term normalization, so that the text the state
// machine eventually highlights is always a byte-for-byte substring of the
// input. It succeeds only if at least two letters were consumed and the
// position immediately following is end-of-input or a non-wordchar;
// otherwise it reports ok=false and the caller must fall back to normal
// word scanning from the original position.
func (s *Scanner) tryAcronym(text string, pos int) (string, int, bool) {
	p := pos
	n := len(text)
	letters := 0

	for {
		_, size := utf8.DecodeRuneInString(text[p:])
		letters++
		p += size

		if p >= n {
			break
		}
		dot, dotSize := utf8.DecodeRuneInString(text[p:])
		if dot != '.' {
			break
		}
		afterDot := p + dotSize
		if afterDot >= n {
			break
		}
		next, _ := utf8.DecodeRuneInString(text[afterDot:])
		if !isASCIIUpper(next) {
			break
		}
		p = afterDot
	}

	if letters <= 1 {
		return "", pos, false
	}

	if p < n {
		r, _ := utf8.DecodeRuneInString(text[p:])
		if ucd.IsWordChar(r) {
			return "", pos, false
		}
	}
	return text[pos:p], p, true
}

// scanWordBody implements the CJK-handoff / latin-accumulation / infix
// loop. It returns the position after the word body, whether the suffix
// check should be skipped (the body ended because of end-of-input or
// CJK-adjacency rather than an ordinary non-infix boundary), and whether
// the caller should stop scanning entirely (end of input was reached while
// skipping non-word characters after a CJK run).
func (s *Scanner) scanWordBody(text string, pos int, ch rune, chSize int, term *strings.Builder) (int, bool, bool) {
	n := len(text)

	for {
		if s.cjkActive() && ucd.IsCJK(ch) {
			s.flushPartialTerm(term)

			runStart := pos
			for pos < n {
				r, size := utf8.DecodeRuneInString(text[pos:])
				if !ucd.IsCJK(r) {
					break
				}
				pos += size
			}
			s.emitCJKRun([]rune(text[runStart:pos]))

			for {
				if pos >= n {
					return pos, true, true
				}
				r, size := utf8.DecodeRuneInString(text[pos:])
				if ucd.IsWordChar(r) {
					ch, chSize = r, size
					break
				}
				s.sink.AcceptNonwordChar(r, *s.termpos)
				pos += size
			}
			continue
		}

		var prev rune
		for {
			ucd.AppendUTF8(term, ch)
			prev = ch
			pos += chSize

			if pos >= n {
				return pos, true, false
			}
			if s.cjkActive() {
				if r, _ := utf8.DecodeRuneInString(text[pos:]); ucd.IsCJK(r) {
					return pos, true, false
				}
			}
			r, size := utf8.DecodeRuneInString(text[pos:])
			if !ucd.IsWordChar(r) {
				break
			}
			ch, chSize = r, size
		}

		// pos now points at the non-wordchar that ended the run.
		infixCh, infixSize := utf8.DecodeRuneInString(text[pos:])
		nextPos := pos + infixSize
		if nextPos >= n {
			return pos, false, false
		}
		next, nextSize := utf8.DecodeRuneInString(text[nextPos:])
		if !ucd.IsWordChar(next) {
			return pos, false, false
		}

		var resolved rune
		var isInfix bool
		if ucd.IsDigit(prev) && ucd.IsDigit(next) {
			resolved, isInfix = ucd.DigitInfix(infixCh)
		} else {
			resolved, isInfix = ucd.Infix(infixCh)
		}
		if !isInfix {
			return pos, false, false
		}
		if resolved != ucd.IGNORE {
			ucd.AppendUTF8(term, resolved)
		}
		pos = nextPos
		ch, chSize = next, nextSize
	}
}

// flushPartialTerm emits term as its own token (ngram_len 0) before a CJK
// handoff, per the rule that a partial Latin term in progress is flushed
// rather than silently dropped when CJK characters begin.
func (s *Scanner) flushPartialTerm(term *strings.Builder) {
	if term.Len() == 0 {
		return
	}
	if term.Len() <= ucd.MaxTermBytes {
		s.sink.AcceptTerm(term.String(), s.nextTermPos(), 0)
	}
	term.Reset()
}

func (s *Scanner) emitCJKRun(run []rune) {
	for _, tok := range s.cjkTok.Tokenize(run) {
		if len(tok.Text) > ucd.MaxTermBytes {
			continue
		}
		s.sink.AcceptTerm(tok.Text, s.nextTermPos(), tok.NgramLen)
	}
}

// scanSuffix absorbs up to three trailing suffix characters (+, #),
// discarding the whole run if a wordchar immediately follows it.
func (s *Scanner) scanSuffix(text string, pos int, term *strings.Builder) int {
	n := len(text)
	lenBefore := term.Len()
	count := 0

	for pos < n {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !ucd.IsSuffix(r) {
			break
		}
		count++
		if count > 3 {
			truncateBuilder(term, lenBefore)
			break
		}
		ucd.AppendUTF8(term, r)
		pos += size
		if pos >= n {
			return pos
		}
	}

	if pos < n {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		if ucd.IsWordChar(r) {
			truncateBuilder(term, lenBefore)
		}
	}
	return pos
}

// truncateBuilder resets b to contain only its first keep bytes. strings.Builder
// has no truncate primitive, so this rebuilds it from the retained prefix.
func truncateBuilder(b *strings.Builder, keep int) {
	if keep >= b.Len() {
		return
	}
	kept := b.String()[:keep]
	b.Reset()
	b.WriteString(kept)
}
