package ed448

import (
	"github.com/athanorlabs/go-edec/field"
	"github.com/athanorlabs/go-edec/internal/memzero"
)

// PointImpl is a point on edwards448 in projective coordinates (X:Y:Z),
// representing the affine point (X/Z, Y/Z).
type PointImpl struct {
	x, y, z field.Fe448
}

func newIdentityPoint() *PointImpl {
	p := new(PointImpl)
	p.y.One()
	p.z.One()
	return p
}

// add sets v = p + q. The formulas are complete since d is not a square.
func (v *PointImpl) add(p, q *PointImpl) *PointImpl {
	var a, b, c, d, e, f, g, h, t field.Fe448
	a.Multiply(&p.z, &q.z)
	b.Square(&a)
	c.Multiply(&p.x, &q.x)
	d.Multiply(&p.y, &q.y)
	e.Multiply(&c, &d)
	e.Multiply(&e, &curveD)
	f.Subtract(&b, &e)
	g.Add(&b, &e)
	h.Add(&p.x, &p.y)
	t.Add(&q.x, &q.y)
	h.Multiply(&h, &t)
	h.Subtract(&h, &c)
	h.Subtract(&h, &d)

	var x3, y3, z3 field.Fe448
	x3.Multiply(&a, &f)
	x3.Multiply(&x3, &h)
	y3.Subtract(&d, &c)
	y3.Multiply(&y3, &g)
	y3.Multiply(&y3, &a)
	z3.Multiply(&f, &g)

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)
	return v
}

func (v *PointImpl) double(p *PointImpl) *PointImpl {
	var b, c, d, e, h, j field.Fe448
	b.Add(&p.x, &p.y)
	b.Square(&b)
	c.Square(&p.x)
	d.Square(&p.y)
	e.Add(&c, &d)
	h.Square(&p.z)
	j.Add(&h, &h)
	j.Subtract(&e, &j)

	var x3, y3, z3 field.Fe448
	x3.Subtract(&b, &e)
	x3.Multiply(&x3, &j)
	y3.Subtract(&c, &d)
	y3.Multiply(&y3, &e)
	z3.Multiply(&e, &j)

	v.x.Set(&x3)
	v.y.Set(&y3)
	v.z.Set(&z3)
	return v
}

func (v *PointImpl) negate(p *PointImpl) *PointImpl {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	return v
}

// selectPoint sets v to a if cond == 1 and to b if cond == 0.
func (v *PointImpl) selectPoint(a, b *PointImpl, cond int) *PointImpl {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	return v
}

// scalarMult sets v = s * p with a fixed sequence of doublings and
// additions over every bit of the scalar encoding.
func (v *PointImpl) scalarMult(s *ScalarImpl, p *PointImpl) *PointImpl {
	k := s.bits()
	q := *p
	acc := newIdentityPoint()
	var t PointImpl
	for i := 8*len(k) - 1; i >= 0; i-- {
		acc.double(acc)
		t.add(acc, &q)
		bit := int(k[i/8]>>(i%8)) & 1
		acc.selectPoint(&t, acc, bit)
	}
	memzero.Zero(k)
	*v = *acc
	return v
}

func (p *PointImpl) Copy() Point {
	c := *p
	return &c
}

func (p *PointImpl) Add(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed448.PointImpl")
	}

	return new(PointImpl).add(p, pp)
}

func (p *PointImpl) Sub(b Point) Point {
	pp, ok := b.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed448.PointImpl")
	}

	neg := new(PointImpl).negate(pp)
	return new(PointImpl).add(p, neg)
}

func (p *PointImpl) Negate() Point {
	return new(PointImpl).negate(p)
}

func (p *PointImpl) Double() Point {
	return new(PointImpl).double(p)
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed448.ScalarImpl")
	}

	return new(PointImpl).scalarMult(ss, p)
}

func (p *PointImpl) MulByCofactor() Point {
	r := new(PointImpl).double(p)
	return r.double(r)
}

// Encode returns the 57-byte encoding of p: the little-endian y coordinate
// followed by a byte holding the sign of x in its top bit.
func (p *PointImpl) Encode() []byte {
	var zInv, x, y field.Fe448
	zInv.Invert(&p.z)
	x.Multiply(&p.x, &zInv)
	y.Multiply(&p.y, &zInv)

	out := make([]byte, PointSize)
	copy(out, y.Bytes())
	out[PointSize-1] = byte(x.IsNegative()) << 7
	return out
}

func (p *PointImpl) IsIdentity() bool {
	return p.x.IsZero()&p.y.Equal(&p.z) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	pp, ok := other.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed448.PointImpl")
	}

	var a, b, c, d field.Fe448
	a.Multiply(&p.x, &pp.z)
	b.Multiply(&pp.x, &p.z)
	c.Multiply(&p.y, &pp.z)
	d.Multiply(&pp.y, &p.z)
	return a.Equal(&b)&c.Equal(&d) == 1
}
