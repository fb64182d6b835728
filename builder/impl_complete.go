// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.

package builder

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(g, n, cfg, MethodComplete); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, i, j, MethodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
