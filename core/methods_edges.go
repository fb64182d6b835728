// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Policy:
//   - Edges are undirected; adjacency is mirrored on insert.
//   - Self-loops and parallel edges are rejected, keeping the relation
//     symmetric and irreflexive by construction.
package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Reject u == v (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, require both endpoints (ErrVertexNotFound).
//   - Stage 3: Reject an existing edge (ErrDuplicateEdge), then mirror it into both buckets.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}
	if _, dup := g.adjacency[u][v]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once as a pair {u, v} with u < v, sorted
// lexicographically.
// Complexity: O(E·log E).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	out := make([][2]int, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
