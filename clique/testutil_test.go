package clique_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/builder"
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// weighted builds a graph from per-vertex weights (IDs 0..len-1) and edges.
func weighted(t testing.TB, weights []int64, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id, w := range weights {
		require.NoError(t, g.AddVertex(id, w))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// randomGraph returns a seeded G(n,p) graph with weights in [1,49].
func randomGraph(seed int64, n int, p float64) *core.Graph {
	if n == 0 {
		return core.NewGraph()
	}
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p),
	)
	if err != nil {
		panic(err)
	}

	return g
}

// bruteForceMWC is an independent reference: it scans every bitmask and
// checks adjacency through the Graph API only.
func bruteForceMWC(g *core.Graph) int64 {
	ids := g.Vertices()
	n := len(ids)
	var best int64
	for mask := 1; mask < 1<<n; mask++ {
		var (
			w  int64
			ok = true
		)
		for i := 0; i < n && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			wi, _ := g.Weight(ids[i])
			w += wi
			for j := i + 1; j < n; j++ {
				if mask&(1<<j) != 0 && !g.HasEdge(ids[i], ids[j]) {
					ok = false
					break
				}
			}
		}
		if ok && w > best {
			best = w
		}
	}

	return best
}
