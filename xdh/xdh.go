// Package xdh implements the X25519 and X448 Diffie-Hellman functions of
// RFC 7748 with a single constant-time Montgomery ladder shared by both
// curves.
//
// Neither function rejects low-order input points. Such inputs produce an
// all-zero output, which callers that need contributory behavior check for.
package xdh

import (
	"errors"
	"fmt"

	"github.com/athanorlabs/go-edec/field"
	"github.com/athanorlabs/go-edec/internal/memzero"
)

const (
	// Size25519 is the length of X25519 scalars, u-coordinates and outputs.
	Size25519 = field.Size25519
	// Size448 is the length of X448 scalars, u-coordinates and outputs.
	Size448 = field.Size448
)

// ErrInvalidLength is returned when a scalar or u-coordinate has the wrong
// length for the function.
var ErrInvalidLength = errors.New("invalid x-dh input length")

var (
	basepoint25519 = [Size25519]byte{9}
	basepoint448   = [Size448]byte{5}
)

// Basepoint25519 returns the u-coordinate 9 of the curve25519 generator.
func Basepoint25519() []byte {
	b := basepoint25519
	return b[:]
}

// Basepoint448 returns the u-coordinate 5 of the curve448 generator.
func Basepoint448() []byte {
	b := basepoint448
	return b[:]
}

// Clamp25519 returns a copy of k with bits 0, 1, 2 and 255 cleared and bit
// 254 set.
func Clamp25519(k []byte) []byte {
	c := make([]byte, Size25519)
	copy(c, k)
	c[0] &= 248
	c[31] &= 127
	c[31] |= 64
	return c
}

// Clamp448 returns a copy of k with bits 0 and 1 cleared and bit 447 set.
func Clamp448(k []byte) []byte {
	c := make([]byte, Size448)
	copy(c, k)
	c[0] &= 252
	c[55] |= 128
	return c
}

// X25519 returns the u-coordinate of the product of the clamped scalar and
// the curve25519 point with u-coordinate u. The most significant bit of u is
// ignored and non-canonical values are accepted.
func X25519(scalar, u []byte) ([]byte, error) {
	if len(scalar) != Size25519 {
		return nil, fmt.Errorf("%w: scalar is %d bytes", ErrInvalidLength, len(scalar))
	}
	if len(u) != Size25519 {
		return nil, fmt.Errorf("%w: point is %d bytes", ErrInvalidLength, len(u))
	}

	k := Clamp25519(scalar)
	defer memzero.Zero(k)
	return ladder[field.Fe25519](k, u, 255, 121665), nil
}

// X448 returns the u-coordinate of the product of the clamped scalar and the
// curve448 point with u-coordinate u. Non-canonical values of u are accepted.
func X448(scalar, u []byte) ([]byte, error) {
	if len(scalar) != Size448 {
		return nil, fmt.Errorf("%w: scalar is %d bytes", ErrInvalidLength, len(scalar))
	}
	if len(u) != Size448 {
		return nil, fmt.Errorf("%w: point is %d bytes", ErrInvalidLength, len(u))
	}

	k := Clamp448(scalar)
	defer memzero.Zero(k)
	return ladder[field.Fe448](k, u, 448, 39081), nil
}

// ladder computes k*u on a Montgomery curve with (A-2)/4 = a24, processing
// the low `bits` bits of the little-endian scalar k. The sequence of field
// operations does not depend on k.
func ladder[T any, E field.Element[T]](k, u []byte, bits int, a24 uint32) []byte {
	var x1, x2, z2, x3, z3 T
	if _, err := E(&x1).SetBytes(u); err != nil {
		panic(err)
	}
	E(&x2).One()
	E(&z2).Zero()
	E(&x3).Set(&x1)
	E(&z3).One()

	var a, aa, b, bb, e, c, d, da, cb T
	swap := 0
	for t := bits - 1; t >= 0; t-- {
		kt := int(k[t/8]>>(t%8)) & 1
		swap ^= kt
		E(&x2).Swap(&x3, swap)
		E(&z2).Swap(&z3, swap)
		swap = kt

		E(&a).Add(&x2, &z2)
		E(&aa).Square(&a)
		E(&b).Subtract(&x2, &z2)
		E(&bb).Square(&b)
		E(&e).Subtract(&aa, &bb)
		E(&c).Add(&x3, &z3)
		E(&d).Subtract(&x3, &z3)
		E(&da).Multiply(&d, &a)
		E(&cb).Multiply(&c, &b)

		E(&x3).Add(&da, &cb)
		E(&x3).Square(&x3)
		E(&z3).Subtract(&da, &cb)
		E(&z3).Square(&z3)
		E(&z3).Multiply(&z3, &x1)
		E(&x2).Multiply(&aa, &bb)
		E(&z2).Mult32(&e, a24)
		E(&z2).Add(&z2, &aa)
		E(&z2).Multiply(&z2, &e)
	}
	E(&x2).Swap(&x3, swap)
	E(&z2).Swap(&z3, swap)

	E(&z2).Invert(&z2)
	E(&x2).Multiply(&x2, &z2)
	return E(&x2).Bytes()
}
