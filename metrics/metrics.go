package metrics

import (
	"time"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound = "found"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// RecordSearch records one completed search.
func (r *Registry) RecordSearch(algorithm string, duration time.Duration, operations, tested, weight int64, found bool) {
	outcome := OutcomeEmpty
	if found {
		outcome = OutcomeFound
	}
	r.SearchesTotal.WithLabelValues(algorithm, outcome).Inc()
	r.SearchDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	r.SearchOperations.WithLabelValues(algorithm).Observe(float64(operations))
	r.SearchTestedSolutions.WithLabelValues(algorithm).Observe(float64(tested))
	r.CliqueWeight.WithLabelValues(algorithm).Set(float64(weight))
}

// RecordSearchError records a search that returned an error.
func (r *Registry) RecordSearchError(algorithm string) {
	r.SearchesTotal.WithLabelValues(algorithm, OutcomeError).Inc()
}

// RecordAbandoned records a run stopped by the time limit
func (r *Registry) RecordAbandoned(algorithm string) {
	r.RunsAbandonedTotal.WithLabelValues(algorithm).Inc()
}

// RecordCacheLookup records a graph cache hit or miss
func (r *Registry) RecordCacheLookup(hit bool) {
	if hit {
		r.GraphCacheTotal.WithLabelValues("hit").Inc()
		return
	}
	r.GraphCacheTotal.WithLabelValues("miss").Inc()
}
