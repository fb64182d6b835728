// File: backtracking.go
// Role: Exact MWC by branch-and-bound DFS.
// Determinism:
//   - One global order (weight desc, ID asc); every branch works on a suffix
//     of it, so each vertex subset is visited at most once.
// Concurrency:
//   - Per-call state lives in bbEngine.
package clique

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// BacktrackingEngine is an exact branch-and-bound search.
//
// State per call is (clique, weight, candidates) where candidates are the
// rest of the global order adjacent to every clique member.
//   - No candidates: record the clique if strictly heavier than the incumbent.
//   - SimpleBound: abandon the branch, without charge, when weight plus the
//     candidates' weights does not exceed the incumbent.
//   - Otherwise include each candidate in turn (one operation each) and
//     recurse on the later candidates adjacent to it.
//
// Operations count inclusion attempts only. TestedSolutions is always 1.
type BacktrackingEngine struct {
	bound BoundPolicy
}

// NewBacktracking returns a BacktrackingEngine with the given pruning policy.
func NewBacktracking(bound BoundPolicy) *BacktrackingEngine {
	return &BacktrackingEngine{bound: bound}
}

// Name implements Engine.
func (*BacktrackingEngine) Name() string { return Backtracking.String() }

// Algorithm implements Engine.
func (*BacktrackingEngine) Algorithm() Algorithm { return Backtracking }

// Bound returns the pruning policy.
func (e *BacktrackingEngine) Bound() BoundPolicy { return e.bound }

// Search implements Engine.
//
// Errors:
//   - ErrNilGraph.
//
// Complexity:
//   - Exponential in the worst case. Recursion depth is bounded by the
//     size of the largest clique.
func (e *BacktrackingEngine) Search(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	v := g.Freeze()

	bb := &bbEngine{
		v:        v,
		useBound: e.bound == SimpleBound,
		clique:   make([]int, 0, 16),
	}
	bb.dfs(0, weightOrder(v))

	res := Result{Operations: bb.ops, TestedSolutions: 1}
	if bb.best != nil {
		res.Clique = &Clique{Vertices: toIDs(v, bb.best), Weight: bb.bestW}
	}

	return res, nil
}

// bbEngine holds the search state of one BacktrackingEngine.Search call.
type bbEngine struct {
	v        *core.View
	useBound bool

	// Current branch; clique is used as a stack.
	clique []int

	// Incumbent. bestW stays 0 until the first record; weights are positive.
	best  []int
	bestW int64

	ops int64
}

func (e *bbEngine) dfs(weight int64, cands []int) {
	if len(cands) == 0 {
		if weight > e.bestW {
			e.best = append(e.best[:0], e.clique...)
			e.bestW = weight
		}
		return
	}

	if e.useBound {
		upper := weight
		for _, c := range cands {
			upper += e.v.Weight(c)
		}
		if upper <= e.bestW {
			return
		}
	}

	for i, c := range cands {
		e.clique = append(e.clique, c)
		e.ops++

		// cands are adjacent to every earlier member, so checking c alone
		// keeps the child list adjacent to the whole new clique.
		rest := cands[i+1:]
		child := make([]int, 0, len(rest))
		for _, r := range rest {
			if e.v.Adjacent(r, c) {
				child = append(child, r)
			}
		}

		e.dfs(weight+e.v.Weight(c), child)
		e.clique = e.clique[:len(e.clique)-1]
	}
}
