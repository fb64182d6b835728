// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := addVertices(g, n, cfg, MethodCycle); err != nil {
			return err
		}

		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(g, i, (i+1)%n, MethodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
