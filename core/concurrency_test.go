// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// TestConcurrentAddEdge adds a star's spokes from many goroutines.
// Errors are collected and asserted on the test goroutine.
func TestConcurrentAddEdge(t *testing.T) {
	const num = 200
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(-1, 1))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(i, 1))
	}

	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge(-1, id)
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	d, err := g.Degree(-1)
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentFreezeAndMutate interleaves snapshots with inserts.
func TestConcurrentFreezeAndMutate(t *testing.T) {
	const rounds = 100
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, 1))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 1; i <= rounds; i++ {
			_ = g.AddVertex(i, int64(i))
			_ = g.AddEdge(0, i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			v := g.Freeze()
			// Every edge in a snapshot touches vertex 0.
			if v.Order() > 0 && len(v.Neighbors(0)) != v.EdgeCount() {
				panic("inconsistent snapshot")
			}
		}
	}()
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}
