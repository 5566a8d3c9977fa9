package catalog

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by Engine.Search.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	matches  prometheus.Histogram
}

// NewMetrics creates the search collectors and registers them with reg.
// Pass nil to create unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shirtsearch",
			Name:      "searches_total",
			Help:      "Number of searches by outcome (ok, invalid).",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shirtsearch",
			Name:      "search_duration_seconds",
			Help:      "Time spent computing a search result and its facet counts.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		matches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "shirtsearch",
			Name:      "search_matches",
			Help:      "Number of shirts returned per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.searches, m.duration, m.matches)
	}
	return m
}

func (m *Metrics) observe(d time.Duration, matches int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues("ok").Inc()
	m.duration.Observe(d.Seconds())
	m.matches.Observe(float64(matches))
}

func (m *Metrics) observeInvalid() {
	if m == nil {
		return
	}
	m.searches.WithLabelValues("invalid").Inc()
}
