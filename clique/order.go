package clique

import (
	"sort"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// weightOrder returns the View indices sorted by weight descending, ties by
// ascending index (which is ascending vertex ID).
func weightOrder(v *core.View) []int {
	order := make([]int, v.Order())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		wa, wb := v.Weight(order[a]), v.Weight(order[b])
		if wa != wb {
			return wa > wb
		}
		return order[a] < order[b]
	})

	return order
}

// toIDs maps View indices to vertex IDs, preserving order.
func toIDs(v *core.View, idx []int) []int {
	ids := make([]int, len(idx))
	for i, x := range idx {
		ids[i] = v.ID(x)
	}

	return ids
}
