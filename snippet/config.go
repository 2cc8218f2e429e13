// Package snippet implements the snippet selection and highlighting engine:
// a single-pass state machine that consumes tokenizer events, slides a
// bounded context window over the token stream, detects matches against a
// normalized match set, and retains the snippets covering the most
// distinct query terms.
package snippet

import (
	"log/slog"

	"github.com/adalundhe/snippetgen/internal/cjk"
	"github.com/adalundhe/snippetgen/metrics"
)

// Stemmer reduces a normalized term to its stem. It must be a pure function
// of its input; the engine never catches a panic from it.
type Stemmer func(string) string

// Normalizer performs an additional, caller-supplied normalization step
// before lowercasing and stemming. Implementations may hold internal state
// (e.g. a sequence-aware transliterator); Reset is called whenever the
// owning Generator's Reset method runs.
type Normalizer interface {
	Normalize(term string) string
	Reset()
}

// FuncNormalizer adapts a stateless function to the Normalizer interface.
type FuncNormalizer struct {
	fn func(string) string
}

// NewFuncNormalizer wraps fn as a Normalizer whose Reset is a no-op.
func NewFuncNormalizer(fn func(string) string) *FuncNormalizer {
	return &FuncNormalizer{fn: fn}
}

// Normalize implements Normalizer.
func (f *FuncNormalizer) Normalize(term string) string {
	if f == nil || f.fn == nil {
		return term
	}
	return f.fn(term)
}

// Reset implements Normalizer.
func (f *FuncNormalizer) Reset() {}

const (
	defaultPreMatch      = "<b>"
	defaultPostMatch     = "</b>"
	defaultInterSnippet  = "..."
	defaultContextLength = 5
	defaultIncreaseDelta = uint32(100)
	normalizeCacheSize   = 4096
)

// DefaultPreMatch returns the default pre-match markup, "<b>".
func DefaultPreMatch() string { return defaultPreMatch }

// DefaultPostMatch returns the default post-match markup, "</b>".
func DefaultPostMatch() string { return defaultPostMatch }

// DefaultInterSnippet returns the default inter-snippet separator, "...".
func DefaultInterSnippet() string { return defaultInterSnippet }

// DefaultContextLength returns the default context length, 5.
func DefaultContextLength() int { return defaultContextLength }

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithPreMatch overrides the markup written before a highlighted term.
func WithPreMatch(s string) Option {
	return func(g *Generator) { g.preMatch = s }
}

// WithPostMatch overrides the markup written after a highlighted term.
func WithPostMatch(s string) Option {
	return func(g *Generator) { g.postMatch = s }
}

// WithInterSnippet overrides the separator written between snippets opened
// within the same pass over the text.
func WithInterSnippet(s string) Option {
	return func(g *Generator) { g.interSnippet = s }
}

// WithContextLength overrides the number of context words kept on each
// side of a match. Negative values are clamped to zero.
func WithContextLength(n int) Option {
	if n < 0 {
		n = 0
	}
	return func(g *Generator) { g.contextLength = n }
}

// WithStemmer installs a stemming function. A nil Stemmer is equivalent to
// the identity function.
func WithStemmer(s Stemmer) Option {
	return func(g *Generator) { g.stemmer = s }
}

// WithNormalizer installs a Normalizer.
func WithNormalizer(n Normalizer) Option {
	return func(g *Generator) { g.normalizer = n }
}

// WithCJKMode pins the CJK decomposition mode, overriding the
// XAPIAN_CJK_NGRAM environment fallback.
func WithCJKMode(m cjk.Mode) Option {
	return func(g *Generator) { g.cjkMode = m; g.cjkModeSet = true }
}

// WithWordSegmenter installs an explicit CJK word-break segmenter and
// pins the mode to cjk.Word. A nil segmenter is ignored.
func WithWordSegmenter(seg cjk.WordSegmenter) Option {
	return func(g *Generator) {
		if seg == nil {
			return
		}
		g.cjkMode = cjk.Word
		g.cjkModeSet = true
		g.wordSegmenter = seg
	}
}

// WithLogger installs the *slog.Logger the Generator reports diagnostic
// events to (e.g. falling back from word-break to n-gram mode). A nil
// logger is equivalent to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithMetrics installs the Prometheus collectors the Generator reports
// AcceptText timing, term throughput, and snippet-selection outcomes to. A
// nil value disables metrics reporting.
func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}
