// File: exhaustive.go
// Role: Exact MWC by enumerating every vertex subset.
// Determinism:
//   - Subsets are visited by size k = 0..n, lexicographically within a size
//     over ascending vertex IDs. The first clique of maximum weight wins.
// Concurrency:
//   - Per-call state only.
package clique

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// MaxExhaustiveVertices is the largest graph order whose 2^n subset count
// still fits in an int64.
const MaxExhaustiveVertices = 62

// ExhaustiveEngine enumerates all 2^n subsets.
//
// Operation accounting per subset of size k:
//   - C(k,2) > |E|: rejected without charge.
//   - otherwise one operation per vertex pair inspected, stopping at the
//     first missing edge;
//   - a non-empty clique charges one more operation for its weight sum.
//
// TestedSolutions is 2^n.
type ExhaustiveEngine struct{}

// NewExhaustive returns an ExhaustiveEngine.
func NewExhaustive() *ExhaustiveEngine { return &ExhaustiveEngine{} }

// Name implements Engine.
func (*ExhaustiveEngine) Name() string { return Exhaustive.String() }

// Algorithm implements Engine.
func (*ExhaustiveEngine) Algorithm() Algorithm { return Exhaustive }

// Search implements Engine.
//
// Errors:
//   - ErrNilGraph, ErrTooManyVertices (n > MaxExhaustiveVertices).
//
// Complexity:
//   - Time Θ(2^n·n²) worst case, Space O(n²/64) for the View.
func (*ExhaustiveEngine) Search(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	v := g.Freeze()
	n := v.Order()
	if n > MaxExhaustiveVertices {
		return Result{}, fmt.Errorf("Exhaustive.Search: %d vertices (max %d): %w", n, MaxExhaustiveVertices, ErrTooManyVertices)
	}

	var (
		res   = Result{TestedSolutions: int64(1) << uint(n)}
		edges = int64(v.EdgeCount())
		comb  = make([]int, n)
		best  []int
		bestW int64
	)

	// k = 0 is the empty subset: enumerated, never a candidate.
	for k := 1; k <= n; k++ {
		// Every larger subset fails the fast reject too, and rejects are free.
		if int64(k)*int64(k-1)/2 > edges {
			break
		}

		sub := comb[:k]
		for i := range sub {
			sub[i] = i
		}
		for {
			if isCliqueCounted(v, sub, &res.Operations) {
				res.Operations++
				var w int64
				for _, x := range sub {
					w += v.Weight(x)
				}
				if best == nil || w > bestW {
					best = append(best[:0], sub...)
					bestW = w
				}
			}
			if !nextCombination(sub, n) {
				break
			}
		}
	}

	if best != nil {
		res.Clique = &Clique{Vertices: toIDs(v, best), Weight: bestW}
	}

	return res, nil
}

// isCliqueCounted checks every pair of sub (outer i, inner j > i), charging
// one operation per pair and stopping at the first non-edge.
func isCliqueCounted(v *core.View, sub []int, ops *int64) bool {
	for i := 0; i < len(sub); i++ {
		for j := i + 1; j < len(sub); j++ {
			*ops++
			if !v.Adjacent(sub[i], sub[j]) {
				return false
			}
		}
	}

	return true
}

// nextCombination advances sub to the next k-combination of 0..n-1 in
// lexicographic order. It reports false after the last one.
func nextCombination(sub []int, n int) bool {
	k := len(sub)
	i := k - 1
	for i >= 0 && sub[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	sub[i]++
	for j := i + 1; j < k; j++ {
		sub[j] = sub[j-1] + 1
	}

	return true
}
