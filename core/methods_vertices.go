// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given ID and weight.
//
// Implementation:
//   - Stage 1: Reject non-positive weights (ErrBadWeight).
//   - Stage 2: Under the write lock, reject an existing ID (ErrDuplicateVertex).
//   - Stage 3: Register the vertex and bootstrap its adjacency bucket.
//
// Errors:
//   - ErrBadWeight: weight <= 0.
//   - ErrDuplicateVertex: id already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int, weight int64, opts ...VertexOption) error {
	if weight <= 0 {
		return fmt.Errorf("AddVertex(%d, w=%d): %w", id, weight, ErrBadWeight)
	}

	v := &Vertex{ID: id, Weight: weight}
	for _, opt := range opts {
		opt(v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrDuplicateVertex)
	}
	g.vertices[id] = v
	g.adjacency[id] = make(map[int]struct{})

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Weight returns the weight of vertex id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Weight(id int) (int64, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.Weight, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// TotalWeight returns the sum of all vertex weights, an upper bound on any
// clique weight in the graph.
// Complexity: O(V).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	for _, v := range g.vertices {
		sum += v.Weight
	}

	return sum
}

// Degree returns the number of neighbors of vertex id.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}
