// Package punch defines the closed set of boxing punch kinds and the Combo
// sequence type built from them.
//
// 🚀 What is a Kind?
//
//	A Kind is one of exactly six punches, each carrying a stable one-byte
//	code for interop with external systems:
//	  • 1 Jab            • 4 RearHook
//	  • 2 Cross          • 5 LeadUppercut
//	  • 3 LeadHook       • 6 RearUppercut
//
// ✨ Key features:
//   - Kinds() enumerates every variant in declaration order
//   - Byte() is the forward code mapping (stable, injective)
//   - ParseKind(code) is the checked reverse mapping
//   - Combo is an immutable, ordered sequence of kinds
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combograph/punch"
//
//	c := punch.NewCombo(punch.Jab, punch.Cross, punch.LeadHook)
//	fmt.Println(c) // Jab-Cross-LeadHook
//
// Errors:
//
//	ErrUnknownKind - code outside 1..6.
package punch
