// SPDX-License-Identifier: MIT
// Package: combograph/probability
//
// vector.go — Vector construction and read access.
//
// Contract:
//   • New/TryNew accept the input iff Sum(pairs) == 1.0 exactly.
//   • NewUnchecked trusts the caller; a wrong sum is not detected.
//   • Labels and probabilities stay index-aligned for the Vector's lifetime.

package probability

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotNormalized indicates probabilities that do not sum to exactly 1.
var ErrNotNormalized = errors.New("probability: probabilities do not sum to 1")

// Pair associates a label with its probability.
type Pair[T any] struct {
	Label       T
	Probability float64
}

// Vector is an immutable labeled distribution. labels[i] has probability probs[i].
type Vector[T any] struct {
	labels []T
	probs  []float64
}

// Sum returns the sequential float64 sum of the pair probabilities.
func Sum[T any](pairs ...Pair[T]) float64 {
	var sum float64
	for _, p := range pairs {
		sum += p.Probability
	}

	return sum
}

// New builds a Vector, or returns ErrNotNormalized if the probabilities
// do not sum to exactly 1.
func New[T any](pairs ...Pair[T]) (*Vector[T], error) {
	if sum := Sum(pairs...); sum != 1 {
		return nil, fmt.Errorf("New: sum=%v over %d pairs: %w", sum, len(pairs), ErrNotNormalized)
	}

	return NewUnchecked(pairs...), nil
}

// TryNew is New without the error detail; ok is false when validation fails.
func TryNew[T any](pairs ...Pair[T]) (v *Vector[T], ok bool) {
	v, err := New(pairs...)
	if err != nil {
		return nil, false
	}

	return v, true
}

// NewUnchecked builds a Vector without validating the sum.
// The caller guarantees the probabilities sum to exactly 1.
func NewUnchecked[T any](pairs ...Pair[T]) *Vector[T] {
	v := &Vector[T]{
		labels: make([]T, len(pairs)),
		probs:  make([]float64, len(pairs)),
	}
	for i, p := range pairs {
		v.labels[i] = p.Label
		v.probs[i] = p.Probability
	}

	return v
}

// Len returns the number of outcomes.
func (v *Vector[T]) Len() int { return len(v.labels) }

// Label returns the i-th label. It panics if i is out of range.
func (v *Vector[T]) Label(i int) T { return v.labels[i] }

// Probability returns the i-th probability. It panics if i is out of range.
func (v *Vector[T]) Probability(i int) float64 { return v.probs[i] }

// At returns the i-th (label, probability) pair. It panics if i is out of range.
func (v *Vector[T]) At(i int) Pair[T] {
	return Pair[T]{Label: v.labels[i], Probability: v.probs[i]}
}

// Labels returns a copy of the labels in order.
func (v *Vector[T]) Labels() []T { return slices.Clone(v.labels) }

// Probabilities returns a copy of the probabilities in order.
func (v *Vector[T]) Probabilities() []float64 { return slices.Clone(v.probs) }
