// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc with j>i.

package builder

import (
	"fmt"

	"github.com/MrLoydHD/mei-aa-p1/core"
)

// RandomSparse returns a Constructor that samples a G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		if err := addVertices(g, n, cfg, MethodRandomSparse); err != nil {
			return err
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var include bool
				switch {
				case p == 0:
				case p == 1:
					include = true
				default:
					include = rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(g, i, j, MethodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
