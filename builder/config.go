// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = nil → resolved to UniformWeightFn(1,49) when seeded,
//                 DefaultWeightFn otherwise
//   • weights   = nil                 (no per-index override)
//   • coords    = [1,20]

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for vertices.
	weightFn WeightFn
	// Explicit weights by vertex index; take precedence over weightFn.
	weights []int64

	// Inclusive coordinate range for X and Y.
	minCoord, maxCoord int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		minCoord: DefaultMinCoord,
		maxCoord: DefaultMaxCoord,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// A seeded build without an explicit policy draws weights like the
	// reference generator.
	if cfg.weightFn == nil {
		if cfg.rng != nil {
			cfg.weightFn = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)
		} else {
			cfg.weightFn = DefaultWeightFn
		}
	}

	return cfg
}

// vertexWeight returns the weight for vertex index i.
func (c builderConfig) vertexWeight(i int) int64 {
	if i < len(c.weights) {
		return c.weights[i]
	}

	return c.weightFn(c.rng)
}

// position draws an (x, y) pair, or (0, 0) without an RNG.
func (c builderConfig) position() (int, int) {
	if c.rng == nil {
		return 0, 0
	}
	span := c.maxCoord - c.minCoord + 1
	x := c.minCoord + c.rng.Intn(span)
	y := c.minCoord + c.rng.Intn(span)

	return x, y
}
