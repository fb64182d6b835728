// Package builder provides internal helper functions and types
// for configuring vertex-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a vertex weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and return a value ≥ 1.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultVertexWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultVertexWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 1.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Panics if min < 1 or max < min.
// If rng is nil, yields min to keep a deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
