package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSearchMetrics() {
	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mwc_searches_total",
			Help: "Total number of clique searches",
		},
		[]string{"algorithm", "outcome"}, // found, empty, error
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mwc_search_duration_seconds",
			Help:    "Wall-clock duration of a clique search in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 16), // 1µs .. ~18min
		},
		[]string{"algorithm"},
	)

	r.SearchOperations = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mwc_search_operations",
			Help:    "Operation count reported by a clique search",
			Buckets: prometheus.ExponentialBuckets(1, 10, 12),
		},
		[]string{"algorithm"},
	)

	r.SearchTestedSolutions = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mwc_tested_solutions",
			Help:    "Tested-solution count reported by a clique search",
			Buckets: prometheus.ExponentialBuckets(1, 16, 10),
		},
		[]string{"algorithm"},
	)

	r.CliqueWeight = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mwc_clique_weight",
			Help: "Weight of the clique found by the most recent search",
		},
		[]string{"algorithm"},
	)
}
