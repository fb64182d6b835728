// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - implementation of Random(n, p) constructor.
//
// Model:
//   - n vertices, each with a position in the configured coordinate range
//     and a weight from the weight policy (uniform [1,49] when seeded).
//   - Exactly m = ⌊C(n,2)·p⌋ distinct edges, sampled by drawing ordered
//     pairs (u,v) uniformly and rejecting loops and existing edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < m < C(n,2) (else ErrNeedRandSource).
//     For m = C(n,2) every pair is emitted in lexicographic order.
//
// Complexity:
//   - Time: O(n) vertices + expected O(M·log M) draws for M = C(n,2) in the
//     dense worst case; O(m) draws for sparse graphs.
//   - Space: O(1) extra (core holds the edge set).
//
// Determinism:
//   - Draw order: per vertex x, y, weight; then edge pairs (u, v).

package builder

import (
	"fmt"
	"math"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Random returns a Constructor that builds a graph with exactly
// ⌊C(n,2)·p⌋ random edges.
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandom, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandom, p); err != nil {
			return err
		}

		pairs := pairCount(n)
		m := int(math.Floor(float64(pairs) * p))
		if cfg.rng == nil && m > 0 && m < pairs {
			return fmt.Errorf("%s: rng is required: %w", MethodRandom, ErrNeedRandSource)
		}

		if err := addVertices(g, n, cfg, MethodRandom); err != nil {
			return err
		}

		if m == pairs {
			for u := 0; u < n; u++ {
				for v := u + 1; v < n; v++ {
					if err := addEdge(g, u, v, MethodRandom); err != nil {
						return err
					}
				}
			}
			return nil
		}

		rng := cfg.rng
		for added := 0; added < m; {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v || g.HasEdge(u, v) {
				continue
			}
			if err := addEdge(g, u, v, MethodRandom); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
