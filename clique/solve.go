// Package clique - dispatcher.
//
// NewEngine and Search route an Algorithm to its engine so callers (the
// experiment runner, the CLI) can stay engine-agnostic.
package clique

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// NewEngine returns the engine for algo configured by opts.
//
// Errors:
//   - ErrUnknownAlgorithm.
func NewEngine(algo Algorithm, opts ...Option) (Engine, error) {
	o := DefaultOptions()
	o.Algo = algo
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Algo {
	case Exhaustive:
		return NewExhaustive(), nil
	case Greedy:
		return NewGreedy(), nil
	case Backtracking:
		return NewBacktracking(o.Bound), nil
	default:
		return nil, fmt.Errorf("NewEngine(%d): %w", int(algo), ErrUnknownAlgorithm)
	}
}

// Search runs the engine selected by opts on g.
func Search(g *core.Graph, opts Options) (Result, error) {
	e, err := NewEngine(opts.Algo, WithBound(opts.Bound))
	if err != nil {
		return Result{}, err
	}

	return e.Search(g)
}
