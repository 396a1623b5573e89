// Package combograph models boxing combinations as data: which punches
// exist, how often one punch follows another, and labeled probability
// distributions over outcomes.
//
// 🚀 What is in combograph?
//
//	A small, dependency-light set of in-memory value types:
//		• punch       — the closed Kind enumeration (Jab … RearUppercut) and Combo
//		• transition  — a complete directed graph over every Kind pair, counting
//		                observed transitions (Insert reports the prior count)
//		• probability — Vector, a labeled distribution validated to sum to 1
//
// ✨ Guarantees
//
//   - Complete by construction – every punch pair exists from New() onward
//   - No missing-key handling – lookups on declared kinds always succeed
//   - Sentinel errors – branch with errors.Is, never on strings
//   - Single-owner types – use transition.SyncGraph for shared access
//
// Quick example:
//
//	g := transition.New()
//	_, seen := g.Insert(punch.Jab, punch.Cross) // seen == false
//	prior, _ := g.Insert(punch.Jab, punch.Cross) // prior == 1
//
//	go get github.com/katalvlaran/combograph
package combograph
