package experiment

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/MrLoydHD/mei-aa-p1/builder"
	"github.com/MrLoydHD/mei-aa-p1/core"
	"github.com/MrLoydHD/mei-aa-p1/metrics"
	"github.com/MrLoydHD/mei-aa-p1/store"
)

// Instance is one generated graph of the sweep.
type Instance struct {
	Vertices int
	EdgeProb float64
	Seed     int64
	Graph    *core.Graph
}

// Key returns the cache key of the instance.
func (in Instance) Key() store.Key {
	return store.Key{Vertices: in.Vertices, EdgeProb: in.EdgeProb, Seed: in.Seed}
}

// SweepSpec describes the instances to generate.
type SweepSpec struct {
	MinVertices       int
	MaxVertices       int
	EdgeProbabilities []float64
	Seed              int64
}

// Size returns the number of instances in the sweep.
func (s SweepSpec) Size() int {
	if s.MaxVertices < s.MinVertices {
		return 0
	}

	return (s.MaxVertices - s.MinVertices + 1) * len(s.EdgeProbabilities)
}

type sweepOptions struct {
	cache   *store.Store
	metrics *metrics.Registry
	log     *logrus.Logger
}

// SweepOption configures Sweep.
type SweepOption func(*sweepOptions)

// WithStore serves instances from cache, generating and storing misses.
// A nil store disables caching.
func WithStore(s *store.Store) SweepOption {
	return func(o *sweepOptions) { o.cache = s }
}

// WithSweepMetrics counts cache hits and misses on reg.
func WithSweepMetrics(reg *metrics.Registry) SweepOption {
	return func(o *sweepOptions) { o.metrics = reg }
}

// WithSweepLogger sets the logger for generation progress.
// Panics if log is nil.
func WithSweepLogger(log *logrus.Logger) SweepOption {
	if log == nil {
		panic("WithSweepLogger: nil logger")
	}

	return func(o *sweepOptions) { o.log = log }
}

// Sweep generates (or loads) every instance, ordered by vertex
// count and then by the order of spec.EdgeProbabilities. Every graph uses
// spec.Seed, so an instance depends only on its own (n, p, seed).
//
// Errors: ErrInvalidSweep, builder errors, store errors, ctx.Err().
func Sweep(ctx context.Context, spec SweepSpec, opts ...SweepOption) ([]Instance, error) {
	if spec.MinVertices < 1 || spec.MaxVertices < spec.MinVertices || len(spec.EdgeProbabilities) == 0 {
		return nil, fmt.Errorf("Sweep: n in [%d,%d], %d probabilities: %w",
			spec.MinVertices, spec.MaxVertices, len(spec.EdgeProbabilities), ErrInvalidSweep)
	}

	o := sweepOptions{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Instance, 0, spec.Size())
	var hits int
	for n := spec.MinVertices; n <= spec.MaxVertices; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, p := range spec.EdgeProbabilities {
			in := Instance{Vertices: n, EdgeProb: p, Seed: spec.Seed}
			build := func() (*core.Graph, error) {
				return builder.RandomGraph(n, p, spec.Seed)
			}

			var (
				g   *core.Graph
				hit bool
				err error
			)
			if o.cache != nil {
				g, hit, err = o.cache.GetOrBuild(in.Key(), build)
				if o.metrics != nil && err == nil {
					o.metrics.RecordCacheLookup(hit)
				}
			} else {
				g, err = build()
			}
			if err != nil {
				return nil, fmt.Errorf("Sweep: %s: %w", in.Key(), err)
			}
			if hit {
				hits++
			}
			in.Graph = g
			out = append(out, in)
		}
	}

	o.log.WithFields(logrus.Fields{
		"instances":  len(out),
		"cache_hits": hits,
		"seed":       spec.Seed,
	}).Info("sweep ready")

	return out, nil
}
