package snippet

import "strings"

// pushResult finalizes the snippet currently under construction against
// the running best-match-count: a result with a strictly greater distinct-
// term cover replaces the retained set outright, one tying the current
// best is appended alongside it, and anything else (or an empty result, or
// one with no matches) is dropped. result and match_cover are always
// cleared afterward.
func (g *Generator) pushResult() {
	m := len(g.matchCover)
	if g.result.Len() > 0 && m > 0 {
		switch {
		case m > g.bestMatchCount:
			g.snippets = []string{g.result.String()}
			g.bestMatchCount = m
		case m == g.bestMatchCount:
			g.snippets = append(g.snippets, g.result.String())
		}
	}
	g.result.Reset()
	g.matchCover = make(map[string]struct{})
}

// GetSnippets finalizes any in-progress snippet and returns the retained
// best snippets concatenated in the order they were produced. Calling it
// with an empty match set, or before any text has been accepted, returns
// the empty string.
func (g *Generator) GetSnippets() string {
	g.pushResult()
	if g.metrics != nil {
		g.metrics.ObserveSnippetsRetained(len(g.snippets))
		g.metrics.ObserveMatchCoverSize(g.bestMatchCount)
	}
	return strings.Join(g.snippets, "")
}
