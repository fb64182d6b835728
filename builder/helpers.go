// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// addVertices inserts vertices 0..n-1, drawing each position and then its
// weight from cfg.
//
// Complexity: O(n) time, O(1) extra space.
func addVertices(g *core.Graph, n int, cfg builderConfig, method string) error {
	for i := 0; i < n; i++ {
		x, y := cfg.position()
		w := cfg.vertexWeight(i)
		if err := g.AddVertex(i, w, core.WithPosition(x, y)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d, w=%d): %w", method, i, w, err)
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with method context.
func addEdge(g *core.Graph, u, v int, method string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// pairCount returns C(n,2).
func pairCount(n int) int {
	return n * (n - 1) / 2
}
