// File: greedy.go
// Role: Multi-start greedy MWC heuristic.
// Determinism:
//   - Seeds in weight-descending order, ties by ascending ID.
//   - The pool pick is the heaviest candidate, ties by LOWEST ID.
// Concurrency:
//   - Per-call state only.
package clique

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// GreedyEngine grows one clique per seed vertex and keeps the heaviest.
//
// For each seed the candidate pool starts as the seed's neighborhood. The
// heaviest pool member is checked against every current member (one
// operation per member, whatever the outcome); when adjacent to all it is
// admitted and the pool shrinks to its neighbors, otherwise it is dropped
// for this seed. TestedSolutions is always 1.
type GreedyEngine struct{}

// NewGreedy returns a GreedyEngine.
func NewGreedy() *GreedyEngine { return &GreedyEngine{} }

// Name implements Engine.
func (*GreedyEngine) Name() string { return Greedy.String() }

// Algorithm implements Engine.
func (*GreedyEngine) Algorithm() Algorithm { return Greedy }

// poolKey orders the candidate pool: heavier first, then lower index.
type poolKey struct {
	weight int64
	idx    int
}

func poolComparator(a, b interface{}) int {
	x, y := a.(poolKey), b.(poolKey)
	switch {
	case x.weight > y.weight:
		return -1
	case x.weight < y.weight:
		return 1
	}

	return utils.IntComparator(x.idx, y.idx)
}

// Search implements Engine.
//
// Errors:
//   - ErrNilGraph.
//
// Complexity:
//   - Time O(n·(d·log d + k·d)) for max degree d and clique size k.
func (*GreedyEngine) Search(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	v := g.Freeze()

	var (
		res     = Result{TestedSolutions: 1}
		best    []int
		bestW   int64
		members = make([]int, 0, 16)
	)

	for _, seed := range weightOrder(v) {
		members = append(members[:0], seed)
		weight := v.Weight(seed)

		pool := redblacktree.NewWith(poolComparator)
		for _, nb := range v.Neighbors(seed) {
			pool.Put(poolKey{weight: v.Weight(nb), idx: nb}, struct{}{})
		}

		for !pool.Empty() {
			pick := pool.Left().Key.(poolKey)
			pool.Remove(pick)

			res.Operations += int64(len(members))
			if !adjacentToAll(v, pick.idx, members) {
				continue
			}
			members = append(members, pick.idx)
			weight += pick.weight

			for _, k := range pool.Keys() {
				if !v.Adjacent(k.(poolKey).idx, pick.idx) {
					pool.Remove(k)
				}
			}
		}

		if weight > bestW {
			best = append(best[:0], members...)
			bestW = weight
		}
	}

	if best != nil {
		res.Clique = &Clique{Vertices: toIDs(v, best), Weight: bestW}
	}

	return res, nil
}

// adjacentToAll reports whether x is adjacent to every index in members.
func adjacentToAll(v *core.View, x int, members []int) bool {
	for _, m := range members {
		if !v.Adjacent(x, m) {
			return false
		}
	}

	return true
}
