package snippet

import "github.com/adalundhe/snippetgen/internal/ucd"

// AcceptTerm implements lexer.EventSink. pos is the termpos value at the
// moment this term was emitted; ngramLen is 0 for ordinary words and
// word-mode CJK tokens, or k>=1 for a CJK n-gram of k characters.
func (g *Generator) AcceptTerm(term string, pos uint32, ngramLen int) {
	if g.metrics != nil {
		g.metrics.IncTermsAccepted(termKind(ngramLen))
	}
	stem := g.normalize(term)

	if pos > g.lastpos+2 {
		g.context.Reset()
		g.leadingNonword.Reset()
		g.pendingOneGram = ""
		g.hasPending = false
		g.ignore1grams = 0
	}

	if ngramLen <= 1 {
		g.xpos += pos - g.lastpos
	}
	g.lastpos = pos
	g.nwhitespace = 0

	if _, matched := g.matches[stem]; matched {
		g.acceptMatch(term, ngramLen)
		return
	}
	if g.xpos <= g.horizon {
		g.acceptAfterContext(term, ngramLen)
		return
	}
	g.acceptPreContext(term, ngramLen)
}

func (g *Generator) acceptMatch(term string, ngramLen int) {
	if g.xpos > g.horizon+uint32(g.context.Len())+1 && g.result.Len() > 0 {
		g.pushResult()
		g.result.WriteString(g.interSnippet)
	} else {
		g.result.WriteString(g.leadingNonword.String())
	}
	g.leadingNonword.Reset()

	if ngramLen == 1 && g.hasPending {
		g.context.Push(g.pendingOneGram)
		g.pendingOneGram = ""
		g.hasPending = false
	}

	for _, tok := range g.context.Drain() {
		g.result.WriteString(tok)
	}

	g.result.WriteString(g.preMatch)
	g.result.WriteString(term)
	g.result.WriteString(g.postMatch)

	g.matchCover[term] = struct{}{}

	ignore := ngramLen - 1
	if ignore < 0 {
		ignore = 0
	}
	g.ignore1grams = ignore
	g.horizon = g.xpos + uint32(g.contextLength) + uint32(ignore)
}

func (g *Generator) acceptAfterContext(term string, ngramLen int) {
	switch {
	case ngramLen == 0:
		g.result.WriteString(term)
	case ngramLen == 1:
		if g.ignore1grams > 0 {
			g.ignore1grams--
		} else {
			g.result.WriteString(term)
		}
	default:
		// A CJK n-gram of length > 1 that falls in after-context is
		// redundant with the 1-grams covering the same characters.
	}
}

func (g *Generator) acceptPreContext(term string, ngramLen int) {
	switch {
	case ngramLen == 0:
		g.context.Push(term)
	case ngramLen == 1:
		if g.hasPending {
			g.context.Push(g.pendingOneGram)
			g.pendingOneGram = ""
			g.hasPending = false
		}
		if g.ignore1grams > 0 {
			g.ignore1grams--
		} else {
			g.pendingOneGram = term
			g.hasPending = true
		}
	default:
		// skip: only the 1-grams at this base position are buffered.
	}
}

func termKind(ngramLen int) string {
	switch {
	case ngramLen == 0:
		return "word"
	case ngramLen == 1:
		return "cjk_1gram"
	default:
		return "cjk_ngram"
	}
}

// AcceptNonwordChar implements lexer.EventSink.
func (g *Generator) AcceptNonwordChar(r rune, pos uint32) {
	if g.context.Empty() && g.leadingNonword.Len() > 0 {
		g.leadingNonword.WriteRune(r)
		return
	}

	g.xpos += pos - g.lastpos

	ch := r
	if ucd.IsWhitespace(r) {
		g.nwhitespace++
		if g.nwhitespace > 1 {
			return
		}
		ch = ' '
	} else {
		g.nwhitespace = 0
	}

	if g.hasPending {
		g.context.Push(g.pendingOneGram)
		g.pendingOneGram = ""
		g.hasPending = false
		g.ignore1grams = 0
	}

	switch {
	case pos == 0:
		g.leadingNonword.WriteRune(ch)
	case g.xpos <= g.horizon:
		if ch == ' ' && g.xpos == g.horizon {
			g.leadingNonword.WriteRune(ch)
		} else {
			g.result.WriteRune(ch)
		}
	default:
		if !g.context.Empty() {
			g.context.AppendToLast(string(ch))
		}
	}
}
