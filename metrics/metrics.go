// Package metrics exposes Prometheus collectors that report snippet
// generator activity.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for a snippet.Generator.
type Metrics struct {
	acceptTextDuration *prometheus.HistogramVec
	termsAccepted      *prometheus.CounterVec
	termsDropped       *prometheus.CounterVec
	snippetsRetained   prometheus.Histogram
	matchCoverSize     prometheus.Histogram
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *Metrics
)

// Default returns the package-level Metrics instance registered with the
// global Prometheus registry. The collectors are created only once to
// avoid duplicate-registration panics when generators are constructed
// repeatedly (e.g. in unit tests).
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = MustNew(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// MustNew constructs a Metrics instance using the provided registerer. The
// caller is responsible for supplying a fresh registry when unique metric
// names are required (for example in tests). Any registration error other
// than a duplicate-registration of an identical collector panics.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	acceptTextDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snippetgen",
			Name:      "accept_text_duration_seconds",
			Help:      "Duration of a single AcceptText call.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"cjk_mode"},
	)
	termsAccepted := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snippetgen",
			Name:      "terms_accepted_total",
			Help:      "Total number of terms emitted by the word tokenizer and fed to the state machine.",
		},
		[]string{"kind"},
	)
	termsDropped := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snippetgen",
			Name:      "terms_dropped_total",
			Help:      "Total number of terms dropped for exceeding the maximum term length.",
		},
		[]string{"kind"},
	)
	snippetsRetained := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snippetgen",
			Name:      "snippets_retained",
			Help:      "Number of snippets retained by GetSnippets per call.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		},
	)
	matchCoverSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snippetgen",
			Name:      "match_cover_size",
			Help:      "Number of distinct matched terms in the best retained snippet.",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		},
	)

	collectors := []prometheus.Collector{
		acceptTextDuration, termsAccepted, termsDropped, snippetsRetained, matchCoverSize,
	}
	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
				switch target := collector.(type) {
				case *prometheus.HistogramVec:
					acceptTextDuration = already.ExistingCollector.(*prometheus.HistogramVec)
				case *prometheus.CounterVec:
					switch target {
					case termsAccepted:
						termsAccepted = already.ExistingCollector.(*prometheus.CounterVec)
					case termsDropped:
						termsDropped = already.ExistingCollector.(*prometheus.CounterVec)
					}
				case prometheus.Histogram:
					switch target {
					case snippetsRetained:
						snippetsRetained = already.ExistingCollector.(prometheus.Histogram)
					case matchCoverSize:
						matchCoverSize = already.ExistingCollector.(prometheus.Histogram)
					}
				}
				continue
			}
			panic(err)
		}
	}

	return &Metrics{
		acceptTextDuration: acceptTextDuration,
		termsAccepted:      termsAccepted,
		termsDropped:       termsDropped,
		snippetsRetained:   snippetsRetained,
		matchCoverSize:     matchCoverSize,
	}
}

// ObserveAcceptText records how long a single AcceptText call took.
func (m *Metrics) ObserveAcceptText(cjkMode string, d time.Duration) {
	if m == nil || m.acceptTextDuration == nil {
		return
	}
	m.acceptTextDuration.WithLabelValues(cjkMode).Observe(d.Seconds())
}

// IncTermsAccepted increments the accepted-term counter for the given kind.
// snippet.Generator reports "word" (ordinary words, acronyms and word-mode
// CJK tokens), "cjk_1gram", and "cjk_ngram" (CJK n-grams longer than one
// character).
func (m *Metrics) IncTermsAccepted(kind string) {
	if m == nil || m.termsAccepted == nil {
		return
	}
	m.termsAccepted.WithLabelValues(kind).Inc()
}

// IncTermsDropped increments the dropped-term counter for the given kind.
func (m *Metrics) IncTermsDropped(kind string) {
	if m == nil || m.termsDropped == nil {
		return
	}
	m.termsDropped.WithLabelValues(kind).Inc()
}

// ObserveSnippetsRetained records the number of snippets a GetSnippets
// call retained.
func (m *Metrics) ObserveSnippetsRetained(n int) {
	if m == nil || m.snippetsRetained == nil {
		return
	}
	m.snippetsRetained.Observe(float64(n))
}

// ObserveMatchCoverSize records the distinct-term coverage of the best
// retained snippet.
func (m *Metrics) ObserveMatchCoverSize(n int) {
	if m == nil || m.matchCoverSize == nil {
		return
	}
	m.matchCoverSize.Observe(float64(n))
}
