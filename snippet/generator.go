package snippet

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adalundhe/snippetgen/internal/cjk"
	"github.com/adalundhe/snippetgen/internal/lexer"
	"github.com/adalundhe/snippetgen/internal/ucd"
	"github.com/adalundhe/snippetgen/metrics"
)

// Generator is the snippet selection and highlighting engine. It is a pure
// synchronous state machine: not safe for concurrent mutation, and holds no
// I/O, timers, or cancellation state. The zero value is not usable; build
// one with New.
type Generator struct {
	preMatch      string
	postMatch     string
	interSnippet  string
	contextLength int
	stemmer       Stemmer
	normalizer    Normalizer

	cjkMode       cjk.Mode
	cjkModeSet    bool
	wordSegmenter cjk.WordSegmenter
	cjkTok        cjk.Tokenizer

	logger  *slog.Logger
	metrics *metrics.Metrics

	matches map[string]struct{}
	normCache *normalizeCache

	termpos uint32
	xpos    uint32
	lastpos uint32
	horizon uint32

	context        *contextBuffer
	leadingNonword strings.Builder
	pendingOneGram string
	hasPending     bool
	ignore1grams   int
	nwhitespace    int

	result     strings.Builder
	matchCover map[string]struct{}

	bestMatchCount int
	snippets       []string
}

// New constructs a Generator with the given options applied over the
// defaults: pre_match "<b>", post_match "</b>", inter_snippet "...",
// context_length 5, termpos 0, CJK mode read from XAPIAN_CJK_NGRAM.
func New(opts ...Option) *Generator {
	g := &Generator{
		preMatch:      defaultPreMatch,
		postMatch:     defaultPostMatch,
		interSnippet:  defaultInterSnippet,
		contextLength: defaultContextLength,
		matches:       make(map[string]struct{}),
		matchCover:    make(map[string]struct{}),
		normCache:     newNormalizeCache(normalizeCacheSize),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.context = newContextBuffer(g.contextLength)
	g.cjkTok = g.buildCJKTokenizer()
	return g
}

func (g *Generator) buildCJKTokenizer() cjk.Tokenizer {
	mode := g.cjkMode
	if !g.cjkModeSet {
		mode = cjk.ModeFromEnv()
	}
	switch mode {
	case cjk.Disabled:
		return nil
	case cjk.Word:
		if g.wordSegmenter != nil {
			return g.wordSegmenter
		}
		seg, err := cjk.NewWordSegmenter()
		if err != nil {
			g.logger.Warn("cjk word segmenter unavailable, falling back to n-gram mode", "error", err)
			return cjk.NGramTokenizer{}
		}
		g.wordSegmenter = seg
		return seg
	default:
		return cjk.NGramTokenizer{}
	}
}

// SetStemmer installs the stemming function, invalidating the
// normalization cache.
func (g *Generator) SetStemmer(s Stemmer) {
	g.stemmer = s
	g.normCache.purge()
}

// SetNormalizer installs the Normalizer.
func (g *Generator) SetNormalizer(n Normalizer) {
	g.normalizer = n
}

// SetPreMatch sets the markup written before a highlighted term.
func (g *Generator) SetPreMatch(s string) { g.preMatch = s }

// SetPostMatch sets the markup written after a highlighted term.
func (g *Generator) SetPostMatch(s string) { g.postMatch = s }

// SetInterSnippet sets the separator written between snippets opened
// within the same accept_text pass.
func (g *Generator) SetInterSnippet(s string) { g.interSnippet = s }

// SetContextLength sets the number of context words kept on each side of
// a match, trimming any already-buffered context that now exceeds it.
// Negative values are clamped to zero.
func (g *Generator) SetContextLength(n int) {
	if n < 0 {
		n = 0
	}
	g.contextLength = n
	g.context.SetLimit(n)
}

// AddMatch runs s through the same word tokenizer accept_text uses for its
// acronym, word-body, infix and suffix rules — which is what makes
// add_match("U.N.C.L.E") and a literal "U.N.C.L.E." in the body text
// normalize to the same match term — but always with CJK decomposition
// disabled, so a CJK phrase like "中国" becomes one match term rather than
// being split into the overlapping n-grams accept_text would index it as.
func (g *Generator) AddMatch(s string) {
	var pos uint32
	collector := &matchTermCollector{}
	lexer.NewScanner(collector, &pos, nil).Run(s)
	for _, term := range collector.terms {
		g.matches[g.normalize(term)] = struct{}{}
	}
}

// matchTermCollector is a lexer.EventSink that gathers the terms a Scanner
// pass emits, discarding non-word characters; used only by AddMatch.
type matchTermCollector struct {
	terms []string
}

func (m *matchTermCollector) AcceptTerm(term string, pos uint32, ngramLen int) {
	m.terms = append(m.terms, term)
}

func (m *matchTermCollector) AcceptNonwordChar(r rune, pos uint32) {}

// AcceptText runs the word tokenizer over text, feeding the resulting
// events into the state machine. It may be called repeatedly to append
// further fields of one logical document.
func (g *Generator) AcceptText(text string) {
	start := time.Now()
	s := lexer.NewScanner(g, &g.termpos, g.cjkTok)
	s.Run(text)
	if g.metrics != nil {
		g.metrics.ObserveAcceptText(g.cjkModeLabel(), time.Since(start))
	}
}

func (g *Generator) cjkModeLabel() string {
	if g.cjkTok == nil {
		return "disabled"
	}
	if g.wordSegmenter != nil {
		return "word"
	}
	return "ngram"
}

// IncreaseTermpos advances termpos by delta (default 100), typically used
// to insert a discontinuity between unrelated fields so that context and
// matches never span the gap.
func (g *Generator) IncreaseTermpos(delta ...uint32) {
	d := defaultIncreaseDelta
	if len(delta) > 0 {
		d = delta[0]
	}
	g.termpos += d
}

// GetTermpos returns the current termpos counter.
func (g *Generator) GetTermpos() uint32 { return g.termpos }

// SetTermpos overrides the termpos counter directly.
func (g *Generator) SetTermpos(pos uint32) { g.termpos = pos }

// Reset zeroes all running state but preserves configuration, the
// stemmer, the normalizer, and the match set.
func (g *Generator) Reset() {
	g.termpos = 0
	g.xpos = 0
	g.lastpos = 0
	g.horizon = 0
	g.context.Reset()
	g.leadingNonword.Reset()
	g.pendingOneGram = ""
	g.hasPending = false
	g.ignore1grams = 0
	g.nwhitespace = 0
	g.result.Reset()
	g.matchCover = make(map[string]struct{})
	g.bestMatchCount = 0
	g.snippets = nil
	g.normCache.purge()
	if g.normalizer != nil {
		g.normalizer.Reset()
	}
}

// normalize applies the normalizer (if any), Unicode lowercasing, and the
// stemmer (if any), in that order, memoizing the lowercase+stem step when
// no normalizer is installed.
func (g *Generator) normalize(term string) string {
	if g.normalizer != nil {
		s := ucd.LowerString(g.normalizer.Normalize(term))
		if g.stemmer != nil {
			s = g.stemmer(s)
		}
		return s
	}
	return g.normCache.getOrCompute(term, func(t string) string {
		s := ucd.LowerString(t)
		if g.stemmer != nil {
			s = g.stemmer(s)
		}
		return s
	})
}

// String implements fmt.Stringer, summarizing the generator's current
// configuration and running totals for logging and debugging.
func (g *Generator) String() string {
	return fmt.Sprintf(
		"snippet.Generator{matches=%d context_length=%d termpos=%d snippets=%d best_matchcount=%d}",
		len(g.matches), g.contextLength, g.termpos, len(g.snippets), g.bestMatchCount,
	)
}
