// Package transition records how often one punch follows another.
//
// A Graph is the complete directed graph over every punch.Kind, self-loops
// included: 6 kinds give 36 ordered pairs. Each pair (edge) carries a Weight
// counting observed transitions.
//
// Guarantees:
//
//   - New() builds every pair up front, all weights zero.
//   - No operation adds or removes pairs; only weights change.
//   - Insert reports the prior count, or seen=false on the first observation.
//   - Weights never decrease.
//
// Example:
//
//	g := transition.New()
//	g.Insert(punch.Jab, punch.Cross)          // 0, false
//	prior, seen := g.Insert(punch.Jab, punch.Cross) // 1, true
//
// Graph performs no locking. Use SyncGraph when several goroutines share
// one graph.
//
// Looking up a pair whose kinds are not declared punch variants is a
// programming error and panics.
package transition
