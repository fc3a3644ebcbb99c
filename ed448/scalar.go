package ed448

import (
	"crypto/subtle"

	"github.com/cloudflare/circl/ecc/goldilocks"
)

// ScalarImpl is an integer modulo the order of the edwards448 prime-order
// subgroup. Its encoding is ScalarSize bytes, the last one always zero.
type ScalarImpl struct {
	inner goldilocks.Scalar
}

func newScalar(b []byte) *ScalarImpl {
	s := new(ScalarImpl)
	s.inner.FromBytes(b)
	return s
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	r := new(ScalarImpl)
	r.inner.Add(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	r := new(ScalarImpl)
	r.inner.Sub(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Negate() Scalar {
	r := &ScalarImpl{inner: s.inner}
	r.inner.Neg()
	return r
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	r := new(ScalarImpl)
	r.inner.Mul(&s.inner, &ss.inner)
	return r
}

func (s *ScalarImpl) Encode() []byte {
	t := s.inner
	t.Red()
	out := make([]byte, ScalarSize)
	copy(out, t[:])
	return out
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	ss, ok := b.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	return subtle.ConstantTimeCompare(s.Encode(), ss.Encode()) == 1
}

func (s *ScalarImpl) IsZero() bool {
	t := s.inner
	return t.IsZero()
}

// bits returns the little-endian encoding of the reduced scalar.
func (s *ScalarImpl) bits() []byte {
	t := s.inner
	t.Red()
	return t[:]
}
