// Package probability provides Vector, a fixed-length labeled discrete
// distribution whose probabilities sum to exactly 1.
//
// Construction is the only point where the invariant is checked:
//
//	v, ok := probability.TryNew(
//		probability.Pair[string]{Label: "north", Probability: 0.1},
//		probability.Pair[string]{Label: "south", Probability: 0.9},
//	)
//
// The sum is a plain sequential float64 sum compared to 1.0 with ==.
// There is no tolerance: inputs whose rounded sum lands on 0.9999999999999999
// are rejected. Callers with pre-validated data may use NewUnchecked.
//
// A Vector is immutable; accessors return copies.
//
// Errors:
//
//	ErrNotNormalized - probabilities do not sum to exactly 1.
package probability
