package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
	p448   = new(big.Int).Sub(
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 448), new(big.Int).Lsh(big.NewInt(1), 224)),
		big.NewInt(1),
	)
)

func leToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

func bigToLE(x *big.Int, size int) []byte {
	be := x.FillBytes(make([]byte, size))
	le := make([]byte, size)
	for i := range be {
		le[size-1-i] = be[i]
	}
	return le
}

func randomBytes(t testing.TB, n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// oracle describes how a field interprets raw bytes.
type oracle struct {
	size   int
	p      *big.Int
	decode func([]byte) *big.Int
}

var (
	oracle25519 = oracle{
		size: Size25519,
		p:    p25519,
		decode: func(b []byte) *big.Int {
			c := append([]byte{}, b...)
			c[len(c)-1] &= 0x7f
			return new(big.Int).Mod(leToBig(c), p25519)
		},
	}
	oracle448 = oracle{
		size: Size448,
		p:    p448,
		decode: func(b []byte) *big.Int {
			return new(big.Int).Mod(leToBig(b), p448)
		},
	}
)

func checkArithmetic[T any, E Element[T]](t *testing.T, o oracle) {
	for i := 0; i < 64; i++ {
		ab, bb := randomBytes(t, o.size), randomBytes(t, o.size)
		var a, b, r T
		_, err := E(&a).SetBytes(ab)
		require.NoError(t, err)
		_, err = E(&b).SetBytes(bb)
		require.NoError(t, err)

		x, y := o.decode(ab), o.decode(bb)
		require.Equal(t, bigToLE(x, o.size), E(&a).Bytes())

		mod := func(z *big.Int) []byte { return bigToLE(z.Mod(z, o.p), o.size) }

		E(&r).Add(&a, &b)
		require.Equal(t, mod(new(big.Int).Add(x, y)), E(&r).Bytes(), "add")

		E(&r).Subtract(&a, &b)
		require.Equal(t, mod(new(big.Int).Sub(x, y)), E(&r).Bytes(), "subtract")

		E(&r).Negate(&a)
		require.Equal(t, mod(new(big.Int).Neg(x)), E(&r).Bytes(), "negate")

		E(&r).Multiply(&a, &b)
		require.Equal(t, mod(new(big.Int).Mul(x, y)), E(&r).Bytes(), "multiply")

		E(&r).Square(&a)
		require.Equal(t, mod(new(big.Int).Mul(x, x)), E(&r).Bytes(), "square")

		E(&r).Mult32(&a, 121665)
		require.Equal(t, mod(new(big.Int).Mul(x, big.NewInt(121665))), E(&r).Bytes(), "mult32")

		E(&r).Invert(&a)
		require.Equal(t, mod(new(big.Int).ModInverse(x, o.p)), E(&r).Bytes(), "invert")

		// in-place operation
		E(&r).Set(&a)
		E(&r).Multiply(&r, &r)
		require.Equal(t, mod(new(big.Int).Mul(x, x)), E(&r).Bytes(), "aliased multiply")
	}
}

func TestFe25519_Arithmetic(t *testing.T) {
	checkArithmetic[Fe25519](t, oracle25519)
}

func TestFe448_Arithmetic(t *testing.T) {
	checkArithmetic[Fe448](t, oracle448)
}

func checkInvertZero[T any, E Element[T]](t *testing.T) {
	var z, r T
	E(&r).One()
	E(&r).Invert(&z)
	require.Equal(t, 1, E(&r).IsZero())
}

func TestInvertZero(t *testing.T) {
	checkInvertZero[Fe25519](t)
	checkInvertZero[Fe448](t)
}

func checkSelectSwap[T any, E Element[T]](t *testing.T, size int) {
	var a, b, r T
	_, err := E(&a).SetBytes(append([]byte{7}, make([]byte, size-1)...))
	require.NoError(t, err)
	E(&b).One()

	E(&r).Select(&a, &b, 1)
	require.Equal(t, 1, E(&r).Equal(&a))
	E(&r).Select(&a, &b, 0)
	require.Equal(t, 1, E(&r).Equal(&b))

	// aliased destination
	E(&r).Set(&a)
	E(&r).Select(&b, &r, 1)
	require.Equal(t, 1, E(&r).Equal(&b))

	var c, d T
	E(&c).Set(&a)
	E(&d).Set(&b)
	E(&c).Swap(&d, 0)
	require.Equal(t, 1, E(&c).Equal(&a))
	require.Equal(t, 1, E(&d).Equal(&b))
	E(&c).Swap(&d, 1)
	require.Equal(t, 1, E(&c).Equal(&b))
	require.Equal(t, 1, E(&d).Equal(&a))
}

func TestSelectSwap(t *testing.T) {
	checkSelectSwap[Fe25519](t, Size25519)
	checkSelectSwap[Fe448](t, Size448)
}

func TestSetBytes_WrongLength(t *testing.T) {
	_, err := new(Fe25519).SetBytes(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = new(Fe448).SetBytes(make([]byte, 57))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestSetBytes_NonCanonical(t *testing.T) {
	one := func(size int) []byte { return append([]byte{1}, make([]byte, size-1)...) }

	pPlusOne := bigToLE(new(big.Int).Add(p448, big.NewInt(1)), Size448)
	fe, err := new(Fe448).SetBytes(pPlusOne)
	require.NoError(t, err)
	require.Equal(t, one(Size448), fe.Bytes())

	pPlusOne = bigToLE(new(big.Int).Add(p25519, big.NewInt(1)), Size25519)
	fe25519, err := new(Fe25519).SetBytes(pPlusOne)
	require.NoError(t, err)
	require.Equal(t, one(Size25519), fe25519.Bytes())

	// the top bit is not part of a curve25519 coordinate
	topBit := one(Size25519)
	topBit[31] |= 0x80
	fe25519, err = new(Fe25519).SetBytes(topBit)
	require.NoError(t, err)
	require.Equal(t, one(Size25519), fe25519.Bytes())
}

func TestIsNegative(t *testing.T) {
	var one, minusOne Fe448
	one.One()
	minusOne.Negate(&one)
	require.Equal(t, 1, one.IsNegative())
	// p-1 is even
	require.Equal(t, 0, minusOne.IsNegative())

	var one25519, minusOne25519 Fe25519
	one25519.One()
	minusOne25519.Negate(&one25519)
	require.Equal(t, 1, one25519.IsNegative())
	require.Equal(t, 0, minusOne25519.IsNegative())
}

func TestFe448_SqrtRatio(t *testing.T) {
	for i := 0; i < 16; i++ {
		var a, w, u, r, check Fe448
		_, err := a.SetBytes(randomBytes(t, Size448))
		require.NoError(t, err)
		_, err = w.SetBytes(randomBytes(t, Size448))
		require.NoError(t, err)

		// u = a^2 * w, so u/w = a^2 is a square
		u.Square(&a)
		u.Multiply(&u, &w)
		_, wasSquare := r.SqrtRatio(&u, &w)
		require.Equal(t, 1, wasSquare)
		check.Square(&r)
		check.Multiply(&check, &w)
		require.Equal(t, 1, check.Equal(&u))

		// -1 is not a square since p = 3 mod 4
		var one Fe448
		one.One()
		u.Square(&a)
		u.Negate(&u)
		_, wasSquare = r.SqrtRatio(&u, &one)
		require.Equal(t, 0, wasSquare)
	}

	var zero, one, r Fe448
	one.One()
	_, wasSquare := r.SqrtRatio(&zero, &one)
	require.Equal(t, 1, wasSquare)
	require.Equal(t, 1, r.IsZero())
}

func FuzzFe448Multiply(f *testing.F) {
	f.Add(make([]byte, Size448), make([]byte, Size448))
	f.Add(bigToLE(new(big.Int).Sub(p448, big.NewInt(1)), Size448), bigToLE(big.NewInt(2), Size448))
	f.Add(bigToLE(p448, Size448), bigToLE(p448, Size448))

	f.Fuzz(func(t *testing.T, aBytes, bBytes []byte) {
		var ab, bb [Size448]byte
		copy(ab[:], aBytes)
		copy(bb[:], bBytes)

		var a, b, r Fe448
		_, _ = a.SetBytes(ab[:])
		_, _ = b.SetBytes(bb[:])
		r.Multiply(&a, &b)

		x, y := oracle448.decode(ab[:]), oracle448.decode(bb[:])
		expected := new(big.Int).Mul(x, y)
		expected.Mod(expected, p448)
		if got := leToBig(r.Bytes()); got.Cmp(expected) != 0 {
			t.Fatalf("incorrect product: got %v, want %v", got, expected)
		}
	})
}

func FuzzFe25519Subtract(f *testing.F) {
	f.Add(make([]byte, Size25519), bigToLE(big.NewInt(1), Size25519))
	f.Add(bigToLE(p25519, Size25519), make([]byte, Size25519))

	f.Fuzz(func(t *testing.T, aBytes, bBytes []byte) {
		var ab, bb [Size25519]byte
		copy(ab[:], aBytes)
		copy(bb[:], bBytes)

		var a, b, r Fe25519
		_, _ = a.SetBytes(ab[:])
		_, _ = b.SetBytes(bb[:])
		r.Subtract(&a, &b)

		expected := new(big.Int).Sub(oracle25519.decode(ab[:]), oracle25519.decode(bb[:]))
		expected.Mod(expected, p25519)
		if got := leToBig(r.Bytes()); got.Cmp(expected) != 0 {
			t.Fatalf("incorrect difference: got %v, want %v", got, expected)
		}
	})
}
