// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i -> i+1 for i=0..n-2.

package builder

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addVertices(g, n, cfg, MethodPath); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, i, i+1, MethodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
