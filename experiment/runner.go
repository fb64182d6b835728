package experiment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/MrLoydHD/mei-aa-p1/clique"
	"github.com/MrLoydHD/mei-aa-p1/metrics"
)

// DefaultTimeout is the per-search limit after which a run is abandoned.
const DefaultTimeout = 120 * time.Second

// Summary describes one finished run.
type Summary struct {
	RunID     uuid.UUID
	Algorithm string
	Records   int
	// Abandoned is set when the run stopped before the last instance.
	Abandoned bool
	// StoppedAt is the vertex count of the last instance searched when
	// Abandoned is set.
	StoppedAt int
	Elapsed   time.Duration
}

// Runner executes engines over instances.
type Runner struct {
	log     *logrus.Logger
	metrics *metrics.Registry
	timeout time.Duration
	bound   clique.BoundPolicy
	workers int
	now     func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Panics if log is nil.
func WithLogger(log *logrus.Logger) RunnerOption {
	if log == nil {
		panic("WithLogger: nil logger")
	}

	return func(r *Runner) { r.log = log }
}

// WithMetrics records every search on reg.
func WithMetrics(reg *metrics.Registry) RunnerOption {
	return func(r *Runner) { r.metrics = reg }
}

// WithTimeout sets the per-search limit. Panics if d <= 0.
func WithTimeout(d time.Duration) RunnerOption {
	if d <= 0 {
		panic(fmt.Sprintf("WithTimeout: non-positive duration %v", d))
	}

	return func(r *Runner) { r.timeout = d }
}

// WithBound sets the pruning policy of the backtracking engine.
func WithBound(b clique.BoundPolicy) RunnerOption {
	return func(r *Runner) { r.bound = b }
}

// WithWorkers caps how many algorithms RunAll runs at once. Panics if n < 1.
func WithWorkers(n int) RunnerOption {
	if n < 1 {
		panic(fmt.Sprintf("WithWorkers: need at least one worker, got %d", n))
	}

	return func(r *Runner) { r.workers = n }
}

// WithClock replaces time.Now for measuring searches. Panics if now is nil.
func WithClock(now func() time.Time) RunnerOption {
	if now == nil {
		panic("WithClock: nil clock")
	}

	return func(r *Runner) { r.now = now }
}

// NewRunner returns a Runner with a 120 s timeout, the simple bound and a
// silent logger unless overridden.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:     discardLogger(),
		timeout: DefaultTimeout,
		bound:   clique.SimpleBound,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run searches every instance with algo, in order, writing one Record per
// search to sink. The search that exceeds the timeout is still recorded,
// then the run stops. A graph too large for exhaustive enumeration also
// stops the run. ctx is checked between instances.
//
// Errors: ErrNilSink, clique.ErrUnknownAlgorithm, ErrInvalidResult, sink
// errors, ctx.Err(). The Summary is valid up to the failing instance.
func (r *Runner) Run(ctx context.Context, algo clique.Algorithm, instances []Instance, sink Sink) (sum Summary, err error) {
	sum = Summary{RunID: uuid.New(), Algorithm: algo.String()}
	if sink == nil {
		return sum, ErrNilSink
	}
	engine, err := clique.NewEngine(algo, clique.WithBound(r.bound))
	if err != nil {
		return sum, err
	}

	log := r.log.WithFields(logrus.Fields{
		"run_id":    sum.RunID.String(),
		"algorithm": sum.Algorithm,
	})
	log.WithField("instances", len(instances)).Info("run started")

	start := r.now()
	defer func() { sum.Elapsed = r.now().Sub(start) }()

	for i, in := range instances {
		if err := ctx.Err(); err != nil {
			log.WithField("done", i).Warn("run cancelled")
			return sum, err
		}

		t0 := r.now()
		res, err := engine.Search(in.Graph)
		took := r.now().Sub(t0)

		if errors.Is(err, clique.ErrTooManyVertices) {
			log.WithField("vertices", in.Vertices).Warn("graph too large for this engine, stopping")
			sum.Abandoned, sum.StoppedAt = true, in.Vertices
			r.recordAbandoned(sum.Algorithm)
			return sum, nil
		}
		if err != nil {
			if r.metrics != nil {
				r.metrics.RecordSearchError(sum.Algorithm)
			}
			return sum, fmt.Errorf("Run: %s on %s: %w", sum.Algorithm, in.Key(), err)
		}
		if res.Found() {
			if verr := res.Clique.Validate(in.Graph); verr != nil {
				return sum, fmt.Errorf("Run: %s on %s: %w: %v", sum.Algorithm, in.Key(), ErrInvalidResult, verr)
			}
		}

		rec := Record{
			RunID:           sum.RunID,
			Algorithm:       sum.Algorithm,
			Vertices:        in.Vertices,
			EdgeProb:        in.EdgeProb,
			MaxWeight:       res.Weight(),
			Operations:      res.Operations,
			TestedSolutions: res.TestedSolutions,
			Duration:        took,
			Clique:          res.Clique,
		}
		if err := sink.Write(rec); err != nil {
			return sum, fmt.Errorf("Run: write record: %w", err)
		}
		sum.Records++
		if r.metrics != nil {
			r.metrics.RecordSearch(sum.Algorithm, took, res.Operations, res.TestedSolutions, res.Weight(), res.Found())
		}

		log.WithFields(logrus.Fields{
			"vertices": in.Vertices,
			"prob":     in.EdgeProb,
			"weight":   rec.MaxWeight,
			"ops":      rec.Operations,
			"took":     took,
		}).Debug("search done")

		if took > r.timeout {
			log.WithFields(logrus.Fields{
				"vertices": in.Vertices,
				"took":     took,
				"limit":    r.timeout,
			}).Warn("search exceeded time limit, stopping run")
			sum.Abandoned = i < len(instances)-1
			sum.StoppedAt = in.Vertices
			if sum.Abandoned {
				r.recordAbandoned(sum.Algorithm)
			}
			return sum, nil
		}
	}

	log.WithField("records", sum.Records).Info("run finished")

	return sum, nil
}

func (r *Runner) recordAbandoned(algo string) {
	if r.metrics != nil {
		r.metrics.RecordAbandoned(algo)
	}
}

// RunAll runs each algorithm over the same instances concurrently, at most
// WithWorkers at a time. sinkFor is called once per algorithm, from that
// algorithm's goroutine. The first error cancels the other runs.
// Summaries are returned in the order of algos.
func (r *Runner) RunAll(
	ctx context.Context,
	algos []clique.Algorithm,
	instances []Instance,
	sinkFor func(clique.Algorithm) (Sink, error),
) ([]Summary, error) {
	sums := make([]Summary, len(algos))
	g, gctx := errgroup.WithContext(ctx)
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}

	for i, algo := range algos {
		i, algo := i, algo
		g.Go(func() error {
			sink, err := sinkFor(algo)
			if err != nil {
				return fmt.Errorf("RunAll: sink for %s: %w", algo, err)
			}
			sum, err := r.Run(gctx, algo, instances, sink)
			sums[i] = sum

			return err
		})
	}

	return sums, g.Wait()
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
