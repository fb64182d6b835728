package clique

import (
	"fmt"
	"strings"
)

// Algorithm selects a search engine.
type Algorithm int

const (
	// Exhaustive enumerates every vertex subset.
	Exhaustive Algorithm = iota
	// Greedy runs the multi-start greedy heuristic.
	Greedy
	// Backtracking runs branch-and-bound DFS.
	Backtracking
)

// Algorithms lists every supported algorithm in dispatch order.
var Algorithms = []Algorithm{Exhaustive, Greedy, Backtracking}

// String returns the algorithm name used in reports and file names.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "Exhaustive"
	case Greedy:
		return "Greedy"
	case Backtracking:
		return "Backtracking"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name or its 1-based menu number
// ("1" exhaustive, "2" greedy, "3" backtracking) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "1":
		return Exhaustive, nil
	case "greedy", "2":
		return Greedy, nil
	case "backtracking", "bb", "3":
		return Backtracking, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}

// BoundPolicy controls pruning in the backtracking engine.
type BoundPolicy int

const (
	// SimpleBound prunes when clique weight plus all candidate weights
	// does not exceed the incumbent.
	SimpleBound BoundPolicy = iota
	// NoBound disables pruning. Intended for tests that check prune soundness.
	NoBound
)

// Options configures the dispatcher.
type Options struct {
	Algo  Algorithm
	Bound BoundPolicy
}

// DefaultOptions returns backtracking with the simple bound.
func DefaultOptions() Options {
	return Options{Algo: Backtracking, Bound: SimpleBound}
}

// Option mutates Options in NewEngine.
type Option func(*Options)

// WithBound sets the pruning policy of the backtracking engine.
// Other engines ignore it.
func WithBound(b BoundPolicy) Option {
	return func(o *Options) { o.Bound = b }
}
