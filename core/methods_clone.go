// File: methods_clone.go
// Role: Deep copies of graph instances.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.
package core

// Clone returns a deep copy of the Graph: vertices (with positions) and adjacency.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		vertices:  make(map[int]*Vertex, len(g.vertices)),
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for id, v := range g.vertices {
		cp := *v
		clone.vertices[id] = &cp
	}
	for u, nbrs := range g.adjacency {
		bucket := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			bucket[v] = struct{}{}
		}
		clone.adjacency[u] = bucket
	}

	return clone
}
