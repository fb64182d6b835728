// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_empty.go - implementation of Empty(n) constructor.

package builder

import (
	"github.com/MrLoydHD/mei-aa-p1/core"
)

// Empty returns a Constructor that adds n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodEmpty, n, 0); err != nil {
			return err
		}

		return addVertices(g, n, cfg, MethodEmpty)
	}
}
