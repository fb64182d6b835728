package clique_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/MrLoydHD/mei-aa-p1/clique"
)

// TestSearchProperties checks the cross-engine invariants on random graphs.
func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	properties := gopter.NewProperties(parameters)

	graphArgs := []gopter.Gen{
		gen.Int64(),
		gen.IntRange(1, 12),
		gen.Float64Range(0, 1),
	}

	properties.Property("exhaustive matches brute force", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g := randomGraph(seed, n, p)
			res, err := clique.NewExhaustive().Search(g)
			return err == nil && res.Weight() == bruteForceMWC(g)
		},
		graphArgs...,
	))

	properties.Property("exact engines agree and bound greedy", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g := randomGraph(seed, n, p)
			ex, err1 := clique.NewExhaustive().Search(g)
			bt, err2 := clique.NewBacktracking(clique.SimpleBound).Search(g)
			gr, err3 := clique.NewGreedy().Search(g)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			return ex.Weight() == bt.Weight() && gr.Weight() <= bt.Weight()
		},
		graphArgs...,
	))

	properties.Property("returned cliques are valid", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g := randomGraph(seed, n, p)
			for _, e := range allEngines() {
				res, err := e.Search(g)
				if err != nil || !res.Found() {
					return false
				}
				if res.Clique.Validate(g) != nil {
					return false
				}
			}
			return true
		},
		graphArgs...,
	))

	properties.Property("tested-solution conventions", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g := randomGraph(seed, n, p)
			ex, _ := clique.NewExhaustive().Search(g)
			gr, _ := clique.NewGreedy().Search(g)
			bt, _ := clique.NewBacktracking(clique.SimpleBound).Search(g)
			return ex.TestedSolutions == int64(1)<<uint(n) &&
				gr.TestedSolutions == 1 && bt.TestedSolutions == 1
		},
		graphArgs...,
	))

	properties.Property("NoBound reports the same weight as SimpleBound", prop.ForAll(
		func(seed int64, n int, p float64) bool {
			g := randomGraph(seed, n, p)
			a, _ := clique.NewBacktracking(clique.SimpleBound).Search(g)
			b, _ := clique.NewBacktracking(clique.NoBound).Search(g)
			return a.Weight() == b.Weight() && a.Operations <= b.Operations
		},
		graphArgs...,
	))

	properties.TestingRun(t)
}
