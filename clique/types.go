package clique

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Sentinel errors for clique search.
var (
	// ErrNilGraph is returned when Search is called with a nil graph.
	ErrNilGraph = errors.New("clique: nil graph")

	// ErrTooManyVertices is returned by exhaustive search when 2^n would
	// overflow the tested-solution counter.
	ErrTooManyVertices = errors.New("clique: too many vertices for exhaustive search")

	// ErrUnknownAlgorithm is returned by the dispatcher for an unrecognized Algorithm.
	ErrUnknownAlgorithm = errors.New("clique: unknown algorithm")

	// ErrNotAClique indicates a vertex set that is empty, repeats a vertex,
	// references a missing vertex, or misses an edge.
	ErrNotAClique = errors.New("clique: vertex set is not a clique")

	// ErrWeightMismatch indicates Clique.Weight differs from the sum of member weights.
	ErrWeightMismatch = errors.New("clique: weight does not match member weights")
)

// Clique is a set of pairwise adjacent vertices and their total weight.
//
// Vertices keeps the order in which the engine admitted them. A Clique held
// by a Result is never modified by the engine after it is returned.
type Clique struct {
	Vertices []int
	Weight   int64
}

// Len returns the number of member vertices.
func (c *Clique) Len() int { return len(c.Vertices) }

// Contains reports whether id is a member.
func (c *Clique) Contains(id int) bool {
	for _, v := range c.Vertices {
		if v == id {
			return true
		}
	}

	return false
}

// Sorted returns a copy of the member IDs in ascending order.
func (c *Clique) Sorted() []int {
	out := make([]int, len(c.Vertices))
	copy(out, c.Vertices)
	sort.Ints(out)

	return out
}

// String renders the clique as "[ids] (weight W)" with ids in discovery order.
func (c *Clique) String() string {
	if c == nil {
		return "<none>"
	}

	return fmt.Sprintf("%v (weight %d)", c.Vertices, c.Weight)
}

// Validate checks that c is a non-empty clique of g and that Weight equals
// the sum of the member weights.
//
// Errors:
//   - ErrNilGraph, ErrNotAClique, ErrWeightMismatch.
//
// Complexity: O(k²) for k members.
func (c *Clique) Validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(c.Vertices) == 0 {
		return fmt.Errorf("Validate: empty vertex set: %w", ErrNotAClique)
	}
	if !g.IsClique(c.Vertices) {
		return fmt.Errorf("Validate(%v): %w", c.Vertices, ErrNotAClique)
	}

	var sum int64
	for _, id := range c.Vertices {
		w, err := g.Weight(id)
		if err != nil {
			return fmt.Errorf("Validate(%v): %w", c.Vertices, ErrNotAClique)
		}
		sum += w
	}
	if sum != c.Weight {
		return fmt.Errorf("Validate: weight %d, members sum to %d: %w", c.Weight, sum, ErrWeightMismatch)
	}

	return nil
}

// Result is the outcome of one search.
type Result struct {
	// Clique is the best clique found, or nil for a graph with no vertices.
	Clique *Clique

	// Operations counts the engine's elementary steps (pair checks,
	// adjacency checks or inclusion attempts, depending on the engine).
	Operations int64

	// TestedSolutions follows the per-engine convention documented in the package.
	TestedSolutions int64
}

// Found reports whether the search produced a clique.
func (r Result) Found() bool { return r.Clique != nil }

// Weight returns the clique weight, or 0 when no clique was found.
func (r Result) Weight() int64 {
	if r.Clique == nil {
		return 0
	}

	return r.Clique.Weight
}

// Engine is a maximum weight clique search strategy.
type Engine interface {
	// Name is the human-readable name used in reports and file names.
	Name() string

	// Algorithm identifies the engine kind.
	Algorithm() Algorithm

	// Search runs one search over a frozen snapshot of g.
	Search(g *core.Graph) (Result, error)
}
