package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/clique"
)

func TestClique_Helpers(t *testing.T) {
	c := &clique.Clique{Vertices: []int{5, 1, 3}, Weight: 9}
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Contains(1))
	assert.False(t, c.Contains(2))
	assert.Equal(t, []int{1, 3, 5}, c.Sorted())
	assert.Equal(t, []int{5, 1, 3}, c.Vertices, "Sorted must not reorder the clique")
	assert.Equal(t, "[5 1 3] (weight 9)", c.String())

	var none *clique.Clique
	assert.Equal(t, "<none>", none.String())
}

func TestClique_Validate(t *testing.T) {
	g := weighted(t, []int64{5, 3, 10}, [][2]int{{0, 1}, {1, 2}})

	ok := &clique.Clique{Vertices: []int{1, 0}, Weight: 8}
	assert.NoError(t, ok.Validate(g))

	assert.ErrorIs(t, (&clique.Clique{Vertices: []int{0, 2}, Weight: 15}).Validate(g), clique.ErrNotAClique)
	assert.ErrorIs(t, (&clique.Clique{Vertices: []int{0, 9}, Weight: 5}).Validate(g), clique.ErrNotAClique)
	assert.ErrorIs(t, (&clique.Clique{}).Validate(g), clique.ErrNotAClique)
	assert.ErrorIs(t, (&clique.Clique{Vertices: []int{1, 2}, Weight: 12}).Validate(g), clique.ErrWeightMismatch)
	assert.ErrorIs(t, ok.Validate(nil), clique.ErrNilGraph)
}

func TestResult_ZeroValue(t *testing.T) {
	var r clique.Result
	assert.False(t, r.Found())
	assert.Equal(t, int64(0), r.Weight())
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]clique.Algorithm{
		"exhaustive":     clique.Exhaustive,
		"Greedy":         clique.Greedy,
		" BACKTRACKING ": clique.Backtracking,
		"1":              clique.Exhaustive,
		"2":              clique.Greedy,
		"3":              clique.Backtracking,
	}
	for in, want := range cases {
		got, err := clique.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := clique.ParseAlgorithm("simulated-annealing")
	assert.ErrorIs(t, err, clique.ErrUnknownAlgorithm)
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "Exhaustive", clique.Exhaustive.String())
	assert.Equal(t, "Greedy", clique.Greedy.String())
	assert.Equal(t, "Backtracking", clique.Backtracking.String())
	assert.Equal(t, "Algorithm(9)", clique.Algorithm(9).String())
}

func TestNewEngine(t *testing.T) {
	for _, algo := range clique.Algorithms {
		e, err := clique.NewEngine(algo)
		require.NoError(t, err)
		assert.Equal(t, algo, e.Algorithm())
		assert.Equal(t, algo.String(), e.Name())
	}

	e, err := clique.NewEngine(clique.Backtracking, clique.WithBound(clique.NoBound))
	require.NoError(t, err)
	bt, ok := e.(*clique.BacktrackingEngine)
	require.True(t, ok)
	assert.Equal(t, clique.NoBound, bt.Bound())

	_, err = clique.NewEngine(clique.Algorithm(42))
	assert.ErrorIs(t, err, clique.ErrUnknownAlgorithm)
}

func TestSearch_Dispatch(t *testing.T) {
	g := weighted(t, []int64{5, 3, 10}, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	res, err := clique.Search(g, clique.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(18), res.Weight())

	res, err = clique.Search(g, clique.Options{Algo: clique.Exhaustive})
	require.NoError(t, err)
	assert.Equal(t, int64(8), res.TestedSolutions)

	_, err = clique.Search(g, clique.Options{Algo: clique.Algorithm(-1)})
	assert.ErrorIs(t, err, clique.ErrUnknownAlgorithm)
}
