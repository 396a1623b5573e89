// SPDX-License-Identifier: MIT
// Package: combograph/punch
//
// kind.go — the Kind enumeration and its byte-code mapping.
//
// Contract:
//   • Exactly six variants, codes 1..6 in declaration order.
//   • The zero Kind is not a variant; Valid reports false for it.
//   • ParseKind never panics; unknown codes wrap ErrUnknownKind.

package punch

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// ErrUnknownKind indicates a numeric code that does not name any Kind.
var ErrUnknownKind = errors.New("punch: unknown kind")

// Kind is a single punch type.
type Kind uint8

const (
	Jab Kind = iota + 1
	Cross
	LeadHook
	RearHook
	LeadUppercut
	RearUppercut
)

// kindCount is the number of declared variants.
const kindCount = 6

var kindNames = [kindCount + 1]string{
	Jab:          "Jab",
	Cross:        "Cross",
	LeadHook:     "LeadHook",
	RearHook:     "RearHook",
	LeadUppercut: "LeadUppercut",
	RearUppercut: "RearUppercut",
}

// Kinds returns every Kind in declaration order.
// The returned slice is freshly allocated on each call.
func Kinds() []Kind {
	return []Kind{Jab, Cross, LeadHook, RearHook, LeadUppercut, RearUppercut}
}

// Byte returns the external one-byte code of k (1..6 for valid kinds).
func (k Kind) Byte() uint8 {
	return uint8(k)
}

// Valid reports whether k is one of the six declared variants.
func (k Kind) Valid() bool {
	return k >= Jab && k <= RearUppercut
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// ParseKind maps an external code back to its Kind.
// Codes that do not fit a byte, or fall outside 1..6, return ErrUnknownKind.
func ParseKind(code int) (Kind, error) {
	b, err := safecast.Conv[uint8](code)
	if err != nil {
		return 0, fmt.Errorf("ParseKind(%d): %w", code, ErrUnknownKind)
	}
	k := Kind(b)
	if !k.Valid() {
		return 0, fmt.Errorf("ParseKind(%d): %w", code, ErrUnknownKind)
	}

	return k, nil
}
