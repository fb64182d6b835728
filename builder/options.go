// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-vertex weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithVertexWeights fixes the weight of vertex i to ws[i]. Vertices beyond
// len(ws) fall back to the weight function. Panics on a weight < 1.
func WithVertexWeights(ws ...int64) BuilderOption {
	for i, w := range ws {
		if w < 1 {
			panic(fmt.Sprintf("builder: WithVertexWeights: weight[%d]=%d < 1", i, w))
		}
	}
	cp := make([]int64, len(ws))
	copy(cp, ws)

	return func(c *builderConfig) {
		c.weights = cp
	}
}

// WithCoordinateRange sets the inclusive X/Y range for vertex positions.
// Panics if lo > hi.
func WithCoordinateRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic(fmt.Sprintf("builder: WithCoordinateRange(%d,%d): lo > hi", lo, hi))
	}
	return func(c *builderConfig) {
		c.minCoord, c.maxCoord = lo, hi
	}
}
