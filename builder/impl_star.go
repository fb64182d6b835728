// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex CenterVertexID (0) is the hub; 1..n-1 are leaves.
//   - Emits spokes in stable order 0 → i for i = 1..n-1.

package builder

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(g, n, cfg, MethodStar); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, CenterVertexID, i, MethodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
