// Package ed448 implements the edwards448 group used by Ed448, the untwisted
// Edwards curve x^2 + y^2 = 1 - 39081 x^2 y^2 over GF(2^448-2^224-1).
package ed448

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-edec/field"
	"github.com/athanorlabs/go-edec/internal/memzero"
	"github.com/athanorlabs/go-edec/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	// PointSize is the length of an encoded edwards448 point.
	PointSize = 57
	// ScalarSize is the length of an encoded scalar and of the secret half
	// of an Ed448 digest.
	ScalarSize = 57
	// UniformSize is the digest length ScalarFromUniformBytes reduces.
	UniformSize = 114
)

var (
	ErrInvalidPoint  = errors.New("invalid edwards448 point encoding")
	ErrInvalidScalar = errors.New("invalid edwards448 scalar encoding")
)

var (
	curveD    field.Fe448
	basePoint PointImpl
)

func init() {
	var one field.Fe448
	one.One()
	curveD.Mult32(&one, 39081)
	curveD.Negate(&curveD)

	const (
		bx = "5ec00cc72ba826268e93008be1803b431165b62af71aae1264a4d3a324e36dea67170f477065149eda36bf22a6151d22ed0ded6bc670194f"
		by = "14fa30f25b790898adc8d74e2c13bdfdc4397ce61cffd33ad7c2a0051e9c78874098a36c7373ea4b62c7c9563720768824bcb66e71463f69"
	)
	mustSetHex(&basePoint.x, bx)
	mustSetHex(&basePoint.y, by)
	basePoint.z.One()
}

func mustSetHex(v *field.Fe448, s string) {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	if _, err = v.SetBytes(b); err != nil {
		panic(err)
	}
}

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "edwards448"
}

func (c *CurveImpl) PointSize() int {
	return PointSize
}

func (c *CurveImpl) ScalarSize() int {
	return ScalarSize
}

func (c *CurveImpl) Cofactor() uint32 {
	return 4
}

func (c *CurveImpl) BasePoint() Point {
	return basePoint.Copy()
}

func (c *CurveImpl) Identity() Point {
	return newIdentityPoint()
}

// DecodePoint decodes a 57-byte point encoding. It rejects non-canonical y
// coordinates, stray bits in the final byte, values of y with no matching x,
// and a negative zero x.
func (c *CurveImpl) DecodePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return nil, fmt.Errorf("%w: invalid length %d", ErrInvalidPoint, len(b))
	}

	if b[PointSize-1]&0x7f != 0 {
		return nil, fmt.Errorf("%w: reserved bits set", ErrInvalidPoint)
	}

	var y field.Fe448
	if _, err := y.SetBytes(b[:field.Size448]); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPoint, err)
	}

	if !bytes.Equal(y.Bytes(), b[:field.Size448]) {
		return nil, fmt.Errorf("%w: non-canonical y coordinate", ErrInvalidPoint)
	}

	// x^2 = (y^2 - 1) / (d y^2 - 1)
	var one, u, w, x field.Fe448
	one.One()
	u.Square(&y)
	w.Multiply(&u, &curveD)
	u.Subtract(&u, &one)
	w.Subtract(&w, &one)
	if _, wasSquare := x.SqrtRatio(&u, &w); wasSquare == 0 {
		return nil, fmt.Errorf("%w: not on curve", ErrInvalidPoint)
	}

	sign := int(b[PointSize-1] >> 7)
	if x.IsZero() == 1 && sign == 1 {
		return nil, fmt.Errorf("%w: negative zero x coordinate", ErrInvalidPoint)
	}

	var negX field.Fe448
	negX.Negate(&x)
	x.Select(&negX, &x, x.IsNegative()^sign)

	p := &PointImpl{x: x, y: y}
	p.z.One()
	return p, nil
}

// DecodeScalar decodes a 57-byte scalar, rejecting values that are not
// below the group order.
func (c *CurveImpl) DecodeScalar(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("%w: invalid length %d", ErrInvalidScalar, len(b))
	}

	if b[ScalarSize-1] != 0 {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidScalar)
	}

	s := newScalar(b[:ScalarSize-1])
	if !bytes.Equal(s.Encode(), b) {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidScalar)
	}

	return s, nil
}

func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	if len(b) != UniformSize {
		return nil, fmt.Errorf("invalid uniform input length %d", len(b))
	}

	return newScalar(b), nil
}

// ScalarFromClampedBytes clears the two low bits, sets bit 447 and clears the
// final byte of a 57-byte digest half before reducing it.
func (c *CurveImpl) ScalarFromClampedBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return nil, fmt.Errorf("invalid clamped input length %d", len(b))
	}

	var k [ScalarSize]byte
	copy(k[:], b)
	k[0] &= 0xfc
	k[55] |= 0x80
	k[56] = 0
	s := newScalar(k[:])
	memzero.Zero(k[:])

	return s, nil
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], in)
	return newScalar(b[:])
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	return new(PointImpl).scalarMult(ss, &basePoint)
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed448.PointImpl")
	}

	return new(PointImpl).scalarMult(ss, pp)
}
