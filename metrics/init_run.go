package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsAbandonedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mwc_runs_abandoned_total",
			Help: "Runs stopped early because a search exceeded the time limit",
		},
		[]string{"algorithm"},
	)

	r.GraphCacheTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mwc_graph_cache_total",
			Help: "Graph cache lookups by result",
		},
		[]string{"result"}, // hit, miss
	)
}
