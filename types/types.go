package types

// Curve is a prime-order subgroup of an Edwards curve together with its
// scalar field.
type Curve interface {
	Name() string
	// PointSize is the length of an encoded point.
	PointSize() int
	// ScalarSize is the length of an encoded scalar, which for EdDSA is also
	// the length of the secret half of the hashed seed.
	ScalarSize() int
	Cofactor() uint32
	BasePoint() Point
	Identity() Point
	DecodePoint([]byte) (Point, error)
	// DecodeScalar rejects encodings that are not fully reduced.
	DecodeScalar([]byte) (Scalar, error)
	// ScalarFromUniformBytes reduces a wide digest modulo the group order.
	ScalarFromUniformBytes([]byte) (Scalar, error)
	// ScalarFromClampedBytes applies the EdDSA clamping rules to a secret
	// digest half and reduces the result.
	ScalarFromClampedBytes([]byte) (Scalar, error)
	ScalarFrom(uint32) Scalar
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
}

// DoubleBaseMuler is implemented by curves that can compute a*A + b*B in
// variable time. Only public inputs may be passed to it.
type DoubleBaseMuler interface {
	VarTimeDoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Negate() Scalar
	Mul(Scalar) Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	Negate() Point
	Double() Point
	ScalarMul(Scalar) Point
	MulByCofactor() Point
	Encode() []byte
	IsIdentity() bool
	Equals(other Point) bool
}
