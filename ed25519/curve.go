package ed25519

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/athanorlabs/go-edec/types"

	"filippo.io/edwards25519"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

const (
	// PointSize is the length of an encoded edwards25519 point.
	PointSize = 32
	// ScalarSize is the length of an encoded scalar.
	ScalarSize = 32
	// UniformSize is the digest length ScalarFromUniformBytes reduces.
	UniformSize = 64
)

var (
	ErrInvalidPoint  = errors.New("invalid edwards25519 point encoding")
	ErrInvalidScalar = errors.New("invalid edwards25519 scalar encoding")
)

type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "edwards25519"
}

func (c *CurveImpl) PointSize() int {
	return PointSize
}

func (c *CurveImpl) ScalarSize() int {
	return ScalarSize
}

func (c *CurveImpl) Cofactor() uint32 {
	return 8
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) Identity() Point {
	return &PointImpl{
		inner: edwards25519.NewIdentityPoint(),
	}
}

func (c *CurveImpl) DecodePoint(b []byte) (Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPoint, err)
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) DecodeScalar(b []byte) (Scalar, error) {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScalar, err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	s, err := new(edwards25519.Scalar).SetUniformBytes(b)
	if err != nil {
		return nil, fmt.Errorf("failed to set bytes: %w", err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFromClampedBytes(b []byte) (Scalar, error) {
	s, err := new(edwards25519.Scalar).SetBytesWithClamping(b)
	if err != nil {
		return nil, fmt.Errorf("failed to set bytes: %w", err)
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) ScalarFrom(in uint32) Scalar {
	var b [ScalarSize]byte
	binary.LittleEndian.PutUint32(b[:4], in)

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

// VarTimeDoubleScalarBaseMul returns a*A + b*B, where B is the base point.
// Execution time depends on the inputs.
func (c *CurveImpl) VarTimeDoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point {
	aa, ok := a.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	bb, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	pp, ok := A.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).VarTimeDoubleScalarBaseMult(aa.inner, pp.inner, bb.inner),
	}
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, ss.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return s.inner.Equal(ss.inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, pp.inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, pp.inner),
	}
}

func (p *PointImpl) Negate() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Negate(p.inner),
	}
}

func (p *PointImpl) Double() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, p.inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}

	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, p.inner),
	}
}

func (p *PointImpl) MulByCofactor() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).MultByCofactor(p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

// BytesMontgomery returns the u-coordinate of the birationally equivalent
// curve25519 point.
func (p *PointImpl) BytesMontgomery() []byte {
	return p.inner.BytesMontgomery()
}

func (p *PointImpl) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}

	return p.inner.Equal(pp.inner) == 1
}
