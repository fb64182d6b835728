// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import "fmt"

// validateMin ensures that n ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
