// Package builder provides functional-options constructors for the
// vertex-weighted graphs searched by package clique.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph and applies Constructors in order.
//     – RandomGraph:       one-call Random(n,p) with an explicit seed.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, vertex weight policy and coordinate range.
//   - Topologies (Constructor implementations):
//     – Random:            n vertices and exactly ⌊C(n,2)·p⌋ distinct random edges.
//     – RandomSparse:      independent Bernoulli(p) trial per vertex pair.
//     – Complete, Cycle, Path, Star, Empty: deterministic fixtures.
//   - Vertex-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultVertexWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Vertex IDs are always 0..n-1 in insertion order. Every vertex receives,
// in this order, an X then a Y coordinate (only when an RNG is configured)
// and then its weight, so a seeded build is reproducible draw for draw.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) and never panic.
//   - Same seed, options and constructor order ⇒ identical graphs.
package builder
