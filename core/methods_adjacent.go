// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - NeighborIDs() returns IDs sorted ascending.
package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}

// IsClique reports whether every pair of ids is adjacent. Unknown IDs and
// repeated IDs make the set a non-clique; the empty set and singletons of
// existing vertices are cliques.
//
// Complexity: O(k²) for k ids.
func (g *Graph) IsClique(ids []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, u := range ids {
		if _, ok := g.vertices[u]; !ok {
			return false
		}
		for _, v := range ids[i+1:] {
			if _, ok := g.adjacency[u][v]; !ok {
				return false
			}
		}
	}

	return true
}
