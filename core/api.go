// File: api.go
// Role: Read-only summary of a graph for logging and admission checks.
package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	TotalWeight int64
	MaxDegree   int
	// Density is |E| / C(|V|,2); zero when |V| < 2.
	Density float64
}

// Stats returns a consistent summary taken under a single read lock.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   g.edgeCount,
	}
	for id, v := range g.vertices {
		stats.TotalWeight += v.Weight
		if d := len(g.adjacency[id]); d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	if n := stats.VertexCount; n >= 2 {
		stats.Density = float64(stats.EdgeCount) / float64(n*(n-1)/2)
	}

	return stats
}
