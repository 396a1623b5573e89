// SPDX-License-Identifier: MIT
// Package: combograph/transition
//
// graph.go — the complete transition graph over punch.Kind.
//
// Contract:
//   • New emits every ordered pair (from,to) of punch.Kinds(), loops included.
//   • Pairs are never added after New and never removed.
//   • A pair with an undeclared Kind is a programming error and panics.
//
// Complexity:
//   • New: O(k²) with k = len(punch.Kinds()).
//   • Insert, Weight: O(1).
//   • Pairs, Weights: O(k²).

package transition

import (
	"fmt"

	"github.com/katalvlaran/combograph/punch"
)

// Pair is an ordered (from, to) edge key.
type Pair struct {
	From punch.Kind
	To   punch.Kind
}

// String renders the pair as "From→To".
func (p Pair) String() string { return p.From.String() + "→" + p.To.String() }

// Graph maps every ordered pair of punch kinds to a Weight.
// Obtain one with New; the zero value holds no pairs and panics on use.
type Graph struct {
	edges map[Pair]*Weight
	order []Pair // deterministic iteration order, from-major
}

// New returns a complete Graph with every weight zero.
func New() *Graph {
	kinds := punch.Kinds()
	g := &Graph{
		edges: make(map[Pair]*Weight, len(kinds)*len(kinds)),
		order: make([]Pair, 0, len(kinds)*len(kinds)),
	}

	// Emit the full cross product in declaration order, self-loops included.
	for _, from := range kinds {
		for _, to := range kinds {
			p := Pair{From: from, To: to}
			g.edges[p] = new(Weight)
			g.order = append(g.order, p)
		}
	}

	return g
}

// edge returns the live counter for (from,to).
// A missing pair means the completeness invariant is broken.
func (g *Graph) edge(from, to punch.Kind) *Weight {
	p := Pair{From: from, To: to}
	w, ok := g.edges[p]
	if !ok {
		panic(fmt.Sprintf("transition: no edge %s in complete graph", p))
	}

	return w
}

// Insert records one observed transition from → to.
//
// It returns the weight the pair held before this call. On the first
// observation of the pair it returns (Weight{}, false) instead.
func (g *Graph) Insert(from, to punch.Kind) (prior Weight, seen bool) {
	w := g.edge(from, to)
	prior = *w
	w.Increment()

	if prior.IsZero() {
		return Weight{}, false
	}

	return prior, true
}

// Weight returns the current count for from → to.
func (g *Graph) Weight(from, to punch.Kind) Weight {
	return *g.edge(from, to)
}

// Len returns the number of pairs, always len(punch.Kinds())².
func (g *Graph) Len() int { return len(g.order) }

// Pairs returns every pair in from-major declaration order.
func (g *Graph) Pairs() []Pair {
	out := make([]Pair, len(g.order))
	copy(out, g.order)

	return out
}

// Weights returns a snapshot of every pair's weight.
// Mutating the returned map does not affect g.
func (g *Graph) Weights() map[Pair]Weight {
	out := make(map[Pair]Weight, len(g.edges))
	for p, w := range g.edges {
		out[p] = *w
	}

	return out
}

// Total returns the sum of all weights, i.e. the number of Insert calls.
func (g *Graph) Total() Weight {
	var total Weight
	for _, w := range g.edges {
		total = total.Add(*w)
	}

	return total
}
