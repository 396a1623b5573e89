// SPDX-License-Identifier: MIT
// Package: combograph/punch
//
// combo.go — Combo, an ordered sequence of punches.
//
// Combo is a plain data holder: it owns a private copy of its punches and
// exposes read-only views.

package punch

import (
	"slices"
	"strings"
)

// Combo is an ordered sequence of punch kinds.
type Combo struct {
	punches []Kind
}

// NewCombo builds a Combo from the given punches.
// The input is copied; later changes to the caller's slice are not observed.
func NewCombo(punches ...Kind) Combo {
	return Combo{punches: slices.Clone(punches)}
}

// Len returns the number of punches in c.
func (c Combo) Len() int { return len(c.punches) }

// Punches returns a copy of the punches in order.
func (c Combo) Punches() []Kind {
	return slices.Clone(c.punches)
}

// Equal reports whether c and other hold the same punches in the same order.
func (c Combo) Equal(other Combo) bool {
	return slices.Equal(c.punches, other.punches)
}

// String renders the combo as dash-separated kind names, e.g. "Jab-Cross".
func (c Combo) String() string {
	parts := make([]string, len(c.punches))
	for i, k := range c.punches {
		parts[i] = k.String()
	}

	return strings.Join(parts, "-")
}
