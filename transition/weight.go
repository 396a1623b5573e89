// SPDX-License-Identifier: MIT
// Package: combograph/transition
//
// weight.go — Weight, a non-negative occurrence counter.
//
// Overflow past math.MaxUint64 wraps; it is not detected.

package transition

import (
	"cmp"
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// Weight counts observed transitions on one edge.
// Weights are comparable with == and ordered via Compare.
type Weight struct {
	n uint64
}

// NewWeight returns a Weight holding n.
func NewWeight(n uint64) Weight { return Weight{n: n} }

// Uint64 returns the raw count.
func (w Weight) Uint64() uint64 { return w.n }

// Int returns the count as an int, failing if it does not fit.
func (w Weight) Int() (int, error) {
	v, err := safecast.Conv[int](w.n)
	if err != nil {
		return 0, fmt.Errorf("Weight.Int(%d): %w", w.n, err)
	}

	return v, nil
}

// IsZero reports whether no transition has been counted.
func (w Weight) IsZero() bool { return w.n == 0 }

// Add returns w + other.
func (w Weight) Add(other Weight) Weight { return w.AddUint(other.n) }

// AddUint returns w + n.
func (w Weight) AddUint(n uint64) Weight { return Weight{n: w.n + n} }

// Increment adds one to w in place.
func (w *Weight) Increment() { w.IncrementBy(1) }

// IncrementBy adds n to w in place.
func (w *Weight) IncrementBy(n uint64) { w.n += n }

// IncrementByWeight adds other to w in place; other is not modified.
func (w *Weight) IncrementByWeight(other Weight) { w.IncrementBy(other.n) }

// Compare returns -1, 0 or +1 as w is less than, equal to, or greater than other.
func (w Weight) Compare(other Weight) int { return cmp.Compare(w.n, other.n) }

// Less reports whether w < other.
func (w Weight) Less(other Weight) bool { return w.n < other.n }

// String implements fmt.Stringer.
func (w Weight) String() string { return strconv.FormatUint(w.n, 10) }
