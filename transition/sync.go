// SPDX-License-Identifier: MIT
// Package: combograph/transition
//
// sync.go — SyncGraph, a Graph guarded for concurrent use.

package transition

import (
	"sync"

	"github.com/katalvlaran/combograph/punch"
)

// SyncGraph wraps a Graph with a sync.RWMutex.
// Writers (Insert) take the exclusive lock; readers share it.
type SyncGraph struct {
	mu sync.RWMutex // guards g
	g  *Graph
}

// NewSync returns a complete, zero-weighted SyncGraph.
func NewSync() *SyncGraph {
	return &SyncGraph{g: New()}
}

// Insert is Graph.Insert under the write lock.
func (s *SyncGraph) Insert(from, to punch.Kind) (Weight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Insert(from, to)
}

// Weight is Graph.Weight under the read lock.
func (s *SyncGraph) Weight(from, to punch.Kind) Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Weight(from, to)
}

// Weights is Graph.Weights under the read lock.
func (s *SyncGraph) Weights() map[Pair]Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Weights()
}

// Total is Graph.Total under the read lock.
func (s *SyncGraph) Total() Weight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Total()
}

// Len is Graph.Len. The pair set never changes, so no lock is taken.
func (s *SyncGraph) Len() int { return s.g.Len() }

// Pairs is Graph.Pairs. The pair set never changes, so no lock is taken.
func (s *SyncGraph) Pairs() []Pair { return s.g.Pairs() }
