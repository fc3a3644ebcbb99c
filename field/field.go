// Package field implements constant-time arithmetic over the two prime fields
// used by this module: GF(2^255-19), shared by edwards25519 and curve25519,
// and GF(2^448-2^224-1), shared by edwards448 and curve448.
//
// Fe25519 and Fe448 expose the same method set, captured by the Element
// constraint, so code such as the Montgomery ladder is written once. Values
// are fully reduced before they are encoded. Invert follows the group-law
// convention of mapping zero to zero rather than signaling an error.
package field

import "errors"

// ErrInvalidLength is returned by SetBytes when the input is not exactly one
// field element wide.
var ErrInvalidLength = errors.New("invalid field element length")

// Element is the arithmetic shared by Fe25519 and Fe448. Methods follow the
// receiver-as-destination convention: v.Add(a, b) sets v = a + b and returns v.
// Conditions passed to Swap and reported by Equal are 0 or 1.
type Element[T any] interface {
	*T
	Zero() *T
	One() *T
	Set(a *T) *T
	SetBytes(x []byte) (*T, error)
	Bytes() []byte
	Add(a, b *T) *T
	Subtract(a, b *T) *T
	Negate(a *T) *T
	Multiply(a, b *T) *T
	Square(a *T) *T
	Mult32(a *T, y uint32) *T
	Invert(a *T) *T
	Select(a, b *T, cond int) *T
	Swap(u *T, cond int)
	Equal(u *T) int
	IsZero() int
}
