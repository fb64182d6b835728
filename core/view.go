// File: view.go
// Role: Immutable dense snapshot of a Graph for search engines.
// Determinism:
//   - Index i of a View is the i-th smallest vertex ID.
// Concurrency:
//   - Freeze holds the read lock while copying; a View is never written after
//     Freeze returns and is safe to share between goroutines.
package core

import (
	"math/bits"
	"sort"
)

// wordBits is the width of one adjacency bitset word.
const wordBits = 64

// View is a frozen, index-addressed copy of a Graph.
//
// Vertices are addressed by index 0..Order()-1 in ascending ID order.
// Adjacency is stored as one bitset row per vertex so Adjacent is a single
// word probe.
type View struct {
	ids     []int
	index   map[int]int
	weights []int64
	rows    [][]uint64
	degree  []int
	edges   int
}

// Freeze returns an immutable View of the current graph state.
//
// Complexity:
//   - Time O(V·log V + V²/64 + E), Space O(V²/64).
func (g *Graph) Freeze() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	n := len(ids)
	words := (n + wordBits - 1) / wordBits
	v := &View{
		ids:     ids,
		index:   make(map[int]int, n),
		weights: make([]int64, n),
		rows:    make([][]uint64, n),
		degree:  make([]int, n),
		edges:   g.edgeCount,
	}
	for i, id := range ids {
		v.index[id] = i
	}

	// One backing array for all rows keeps the bitsets contiguous.
	backing := make([]uint64, n*words)
	for i, id := range ids {
		v.weights[i] = g.vertices[id].Weight
		row := backing[i*words : (i+1)*words]
		for nb := range g.adjacency[id] {
			j := v.index[nb]
			row[j/wordBits] |= 1 << (uint(j) % wordBits)
		}
		v.rows[i] = row
		v.degree[i] = len(g.adjacency[id])
	}

	return v
}

// Order returns the number of vertices.
func (v *View) Order() int { return len(v.ids) }

// EdgeCount returns the number of undirected edges.
func (v *View) EdgeCount() int { return v.edges }

// ID returns the vertex ID stored at index i.
func (v *View) ID(i int) int { return v.ids[i] }

// Index returns the index of vertex id, or false if id is not in the View.
func (v *View) Index(id int) (int, bool) {
	i, ok := v.index[id]
	return i, ok
}

// Weight returns the weight of the vertex at index i.
func (v *View) Weight(i int) int64 { return v.weights[i] }

// Degree returns the number of neighbors of the vertex at index i.
func (v *View) Degree(i int) int { return v.degree[i] }

// Adjacent reports whether the vertices at indices i and j share an edge.
// Complexity: O(1).
func (v *View) Adjacent(i, j int) bool {
	return v.rows[i][j/wordBits]&(1<<(uint(j)%wordBits)) != 0
}

// Neighbors returns the indices adjacent to i in ascending order.
// Complexity: O(V/64 + d).
func (v *View) Neighbors(i int) []int {
	out := make([]int, 0, v.degree[i])
	for w, word := range v.rows[i] {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*wordBits+b)
			word &= word - 1
		}
	}

	return out
}
