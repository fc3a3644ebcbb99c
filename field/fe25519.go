package field

import (
	ed25519field "filippo.io/edwards25519/field"
)

// Size25519 is the encoded size of a GF(2^255-19) element.
const Size25519 = 32

// Fe25519 is an element of GF(2^255-19). The zero value is 0.
type Fe25519 struct {
	e ed25519field.Element
}

func (v *Fe25519) Zero() *Fe25519 {
	v.e.Zero()
	return v
}

func (v *Fe25519) One() *Fe25519 {
	v.e.One()
	return v
}

func (v *Fe25519) Set(a *Fe25519) *Fe25519 {
	v.e.Set(&a.e)
	return v
}

// SetBytes sets v to the little-endian value x. As in RFC 7748 the most
// significant bit is ignored and values in [p, 2^255) are accepted.
func (v *Fe25519) SetBytes(x []byte) (*Fe25519, error) {
	if len(x) != Size25519 {
		return nil, ErrInvalidLength
	}
	if _, err := v.e.SetBytes(x); err != nil {
		return nil, err
	}
	return v, nil
}

// Bytes returns the canonical little-endian encoding of v.
func (v *Fe25519) Bytes() []byte {
	return v.e.Bytes()
}

func (v *Fe25519) Add(a, b *Fe25519) *Fe25519 {
	v.e.Add(&a.e, &b.e)
	return v
}

func (v *Fe25519) Subtract(a, b *Fe25519) *Fe25519 {
	v.e.Subtract(&a.e, &b.e)
	return v
}

func (v *Fe25519) Negate(a *Fe25519) *Fe25519 {
	v.e.Negate(&a.e)
	return v
}

func (v *Fe25519) Multiply(a, b *Fe25519) *Fe25519 {
	v.e.Multiply(&a.e, &b.e)
	return v
}

func (v *Fe25519) Square(a *Fe25519) *Fe25519 {
	v.e.Square(&a.e)
	return v
}

// Mult32 sets v = a * y.
func (v *Fe25519) Mult32(a *Fe25519, y uint32) *Fe25519 {
	v.e.Mult32(&a.e, y)
	return v
}

// Invert sets v = 1/a mod p, computed as a^(p-2). If a == 0, v = 0.
func (v *Fe25519) Invert(a *Fe25519) *Fe25519 {
	v.e.Invert(&a.e)
	return v
}

// Select sets v to a if cond == 1 and to b if cond == 0.
func (v *Fe25519) Select(a, b *Fe25519, cond int) *Fe25519 {
	v.e.Select(&a.e, &b.e, cond)
	return v
}

// Swap swaps v and u if cond == 1 and leaves them unchanged if cond == 0.
func (v *Fe25519) Swap(u *Fe25519, cond int) {
	v.e.Swap(&u.e, cond)
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Fe25519) Equal(u *Fe25519) int {
	return v.e.Equal(&u.e)
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Fe25519) IsZero() int {
	var zero ed25519field.Element
	return v.e.Equal(&zero)
}

// IsNegative returns 1 if v is odd once reduced, and 0 otherwise.
func (v *Fe25519) IsNegative() int {
	return v.e.IsNegative()
}
