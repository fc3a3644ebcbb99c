package field

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/cloudflare/circl/math/fp448"
)

// Size448 is the encoded size of a GF(2^448-2^224-1) element.
const Size448 = fp448.Size

// Fe448 is an element of GF(2^448-2^224-1). The zero value is 0.
//
// The backing representation may hold any value below 2^448; it is reduced
// modulo p whenever it is encoded or compared.
type Fe448 struct {
	e fp448.Elt
}

func (v *Fe448) Zero() *Fe448 {
	v.e = fp448.Elt{}
	return v
}

func (v *Fe448) One() *Fe448 {
	v.e = fp448.One()
	return v
}

func (v *Fe448) Set(a *Fe448) *Fe448 {
	v.e = a.e
	return v
}

// SetBytes sets v to the little-endian value x. Values in [p, 2^448) are
// accepted, as required for X448 u-coordinates. Callers that need a canonical
// encoding compare the input against Bytes.
func (v *Fe448) SetBytes(x []byte) (*Fe448, error) {
	if len(x) != Size448 {
		return nil, ErrInvalidLength
	}
	copy(v.e[:], x)
	return v, nil
}

// Bytes returns the canonical little-endian encoding of v.
func (v *Fe448) Bytes() []byte {
	t := v.e
	fp448.Modp(&t)
	out := make([]byte, Size448)
	copy(out, t[:])
	return out
}

func (v *Fe448) Add(a, b *Fe448) *Fe448 {
	fp448.Add(&v.e, &a.e, &b.e)
	return v
}

func (v *Fe448) Subtract(a, b *Fe448) *Fe448 {
	fp448.Sub(&v.e, &a.e, &b.e)
	return v
}

func (v *Fe448) Negate(a *Fe448) *Fe448 {
	fp448.Neg(&v.e, &a.e)
	return v
}

func (v *Fe448) Multiply(a, b *Fe448) *Fe448 {
	fp448.Mul(&v.e, &a.e, &b.e)
	return v
}

func (v *Fe448) Square(a *Fe448) *Fe448 {
	fp448.Sqr(&v.e, &a.e)
	return v
}

// Mult32 sets v = a * y.
func (v *Fe448) Mult32(a *Fe448, y uint32) *Fe448 {
	var c fp448.Elt
	binary.LittleEndian.PutUint32(c[:4], y)
	fp448.Mul(&v.e, &a.e, &c)
	return v
}

// Invert sets v = 1/a mod p, computed as a^(p-2) with a fixed addition
// chain. If a == 0, v = 0.
func (v *Fe448) Invert(a *Fe448) *Fe448 {
	fp448.Inv(&v.e, &a.e)
	return v
}

// Select sets v to a if cond == 1 and to b if cond == 0.
func (v *Fe448) Select(a, b *Fe448, cond int) *Fe448 {
	t := b.e
	fp448.Cmov(&t, &a.e, uint(cond))
	v.e = t
	return v
}

// Swap swaps v and u if cond == 1 and leaves them unchanged if cond == 0.
func (v *Fe448) Swap(u *Fe448, cond int) {
	fp448.Cswap(&v.e, &u.e, uint(cond))
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Fe448) Equal(u *Fe448) int {
	return subtle.ConstantTimeCompare(v.Bytes(), u.Bytes())
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Fe448) IsZero() int {
	var zero Fe448
	return v.Equal(&zero)
}

// IsNegative returns 1 if v is odd once reduced, and 0 otherwise.
func (v *Fe448) IsNegative() int {
	return int(v.Bytes()[0] & 1)
}

// SqrtRatio sets v to a square root of u/w and returns 1 if u/w is a square.
// Otherwise v is set to sqrt(-u/w) and 0 is returned. It only runs on public
// inputs (point decompression), so the result flag is not computed in
// constant time.
func (v *Fe448) SqrtRatio(u, w *Fe448) (*Fe448, int) {
	var r fp448.Elt
	wasSquare := 0
	if fp448.InvSqrt(&r, &u.e, &w.e) {
		wasSquare = 1
	}
	v.e = r
	return v, wasSquare
}
