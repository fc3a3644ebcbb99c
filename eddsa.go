package edec

import (
	"crypto/sha512"
	"fmt"

	"github.com/athanorlabs/go-edec/ed448"
	"github.com/athanorlabs/go-edec/internal/memzero"
	"github.com/athanorlabs/go-edec/types"
	"golang.org/x/crypto/sha3"
)

const (
	domPrefix25519 = "SigEd25519 no Ed25519 collisions"
	domPrefix448   = "SigEd448"

	// prehashSize448 is the SHAKE256 output length used by Ed448ph.
	prehashSize448 = 64
)

// digest hashes the concatenation of parts with the algorithm's hash: SHA-512
// for Ed25519 and SHAKE256 with a 114-byte output for Ed448.
func digest(alg Algorithm, parts ...[]byte) []byte {
	switch alg {
	case Ed25519:
		h := sha512.New()
		for _, p := range parts {
			h.Write(p)
		}
		return h.Sum(nil)
	case Ed448:
		h := sha3.NewShake256()
		for _, p := range parts {
			h.Write(p)
		}
		out := make([]byte, ed448.UniformSize)
		// ShakeHash.Read never returns an error.
		_, _ = h.Read(out)
		return out
	default:
		panic("no digest for " + alg.String())
	}
}

// dom returns the domain separation prefix. Pure Ed25519 has none; Ed448
// always carries one.
func dom(alg Algorithm, preHash bool, ctx []byte) []byte {
	var prefix string
	switch alg {
	case Ed25519:
		if !preHash && len(ctx) == 0 {
			return nil
		}
		prefix = domPrefix25519
	case Ed448:
		prefix = domPrefix448
	}

	out := make([]byte, 0, len(prefix)+2+len(ctx))
	out = append(out, prefix...)
	if preHash {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = append(out, byte(len(ctx)))
	return append(out, ctx...)
}

// prehash returns PH(message) for the pre-hashed variants.
func prehash(alg Algorithm, message []byte) []byte {
	if alg == Ed448 {
		out := make([]byte, prehashSize448)
		sha3.ShakeSum256(out, message)
		return out
	}
	h := sha512.Sum512(message)
	return h[:]
}

// expandSeed hashes the seed and returns the clamped secret scalar and the
// nonce prefix. The caller wipes the prefix.
func expandSeed(alg Algorithm, seed []byte) (types.Scalar, []byte, error) {
	curve := alg.curve()
	h := digest(alg, seed)
	defer memzero.Zero(h[:curve.ScalarSize()])

	s, err := curve.ScalarFromClampedBytes(h[:curve.ScalarSize()])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive secret scalar: %w", err)
	}

	return s, h[curve.ScalarSize():], nil
}

// derivePublicEdDSA returns the encoded public point for an EdDSA seed.
func derivePublicEdDSA(alg Algorithm, seed []byte) ([]byte, error) {
	s, prefix, err := expandSeed(alg, seed)
	if err != nil {
		return nil, err
	}
	memzero.Zero(prefix)

	return alg.curve().ScalarBaseMul(s).Encode(), nil
}

// signEdDSA computes R || S over message, which the caller has already
// pre-hashed when preHash is set.
func signEdDSA(alg Algorithm, seed, public, message []byte, preHash bool, ctx []byte) ([]byte, error) {
	curve := alg.curve()
	s, prefix, err := expandSeed(alg, seed)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(prefix)

	d := dom(alg, preHash, ctx)

	rDigest := digest(alg, d, prefix, message)
	defer memzero.Zero(rDigest)
	r, err := curve.ScalarFromUniformBytes(rDigest)
	if err != nil {
		return nil, fmt.Errorf("failed to derive nonce: %w", err)
	}

	R := curve.ScalarBaseMul(r).Encode()

	k, err := curve.ScalarFromUniformBytes(digest(alg, d, R, public, message))
	if err != nil {
		return nil, fmt.Errorf("failed to derive challenge: %w", err)
	}

	S := k.Mul(s).Add(r)
	return append(R, S.Encode()...), nil
}

// verifyEdDSA checks the cofactored equation [c][S]B == [c](R + [k]A).
func verifyEdDSA(alg Algorithm, public, message, sig []byte, preHash bool, ctx []byte) error {
	curve := alg.curve()
	if len(sig) != alg.SignatureSize() {
		return fmt.Errorf("%w: signature is %d bytes, expected %d", ErrInvalidSignature, len(sig), alg.SignatureSize())
	}

	A, err := curve.DecodePoint(public)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	size := curve.PointSize()
	R, err := curve.DecodePoint(sig[:size])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	S, err := curve.DecodeScalar(sig[size:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	k, err := curve.ScalarFromUniformBytes(digest(alg, dom(alg, preHash, ctx), sig[:size], public, message))
	if err != nil {
		return fmt.Errorf("failed to derive challenge: %w", err)
	}

	// [S]B - [k]A - R
	var check types.Point
	if dbm, ok := curve.(types.DoubleBaseMuler); ok {
		check = dbm.VarTimeDoubleScalarBaseMul(k.Negate(), A, S).Sub(R)
	} else {
		check = curve.ScalarBaseMul(S).Sub(A.ScalarMul(k)).Sub(R)
	}

	if !check.MulByCofactor().IsIdentity() {
		return ErrInvalidSignature
	}

	return nil
}
