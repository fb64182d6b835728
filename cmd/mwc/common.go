package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MrLoydHD/mei-aa-p1/experiment"
	"github.com/MrLoydHD/mei-aa-p1/metrics"
	"github.com/MrLoydHD/mei-aa-p1/store"
)

func (a *app) sweepSpec() experiment.SweepSpec {
	return experiment.SweepSpec{
		MinVertices:       a.cfg.Experiment.MinVertices,
		MaxVertices:       a.cfg.Experiment.MaxVertices,
		EdgeProbabilities: a.cfg.Experiment.EdgeProbabilities,
		Seed:              a.cfg.Experiment.Seed,
	}
}

// openStore returns nil when the cache is disabled.
func (a *app) openStore() (*store.Store, error) {
	if !a.cfg.Cache.Enabled {
		return nil, nil
	}
	sc := store.DefaultConfig(a.cfg.Cache.Path)
	sc.InMemory = a.cfg.Cache.InMemory
	sc.Logger = a.log

	return store.Open(sc)
}

// sweep builds the configured instances, through the cache when enabled.
func (a *app) sweep(ctx context.Context, reg *metrics.Registry) ([]experiment.Instance, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				a.log.WithError(cerr).Warn("closing graph cache")
			}
		}()
	}

	opts := []experiment.SweepOption{
		experiment.WithStore(st),
		experiment.WithSweepLogger(a.log),
	}
	if reg != nil {
		opts = append(opts, experiment.WithSweepMetrics(reg))
	}

	return experiment.Sweep(ctx, a.sweepSpec(), opts...)
}

// serveMetrics exposes reg on /metrics until the returned stop is called.
// It is a no-op when no address is configured.
func (a *app) serveMetrics(reg *metrics.Registry) (stop func()) {
	if a.cfg.Metrics.Addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{
		Addr:              a.cfg.Metrics.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.WithError(err).Error("metrics server")
		}
	}()
	a.log.WithField("addr", a.cfg.Metrics.Addr).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
