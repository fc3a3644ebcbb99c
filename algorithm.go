package edec

import (
	"encoding/asn1"
	"fmt"
	"strings"

	"github.com/athanorlabs/go-edec/ed25519"
	"github.com/athanorlabs/go-edec/ed448"
	"github.com/athanorlabs/go-edec/types"
	"github.com/athanorlabs/go-edec/xdh"
)

// Algorithm identifies one of the four supported key types.
type Algorithm int

const (
	UnknownAlgorithm Algorithm = iota
	Ed25519
	Ed448
	X25519
	X448
)

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{Ed25519, Ed448, X25519, X448}

var (
	oidX25519  = asn1.ObjectIdentifier{1, 3, 101, 110}
	oidX448    = asn1.ObjectIdentifier{1, 3, 101, 111}
	oidEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidEd448   = asn1.ObjectIdentifier{1, 3, 101, 113}
)

var (
	curve25519 = ed25519.NewCurve()
	curve448   = ed448.NewCurve()
)

func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "Ed25519"
	case Ed448:
		return "Ed448"
	case X25519:
		return "X25519"
	case X448:
		return "X448"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return UnknownAlgorithm, fmt.Errorf("unknown algorithm %q", name)
}

// OID returns the RFC 8410 object identifier of a, or nil if a is unknown.
func (a Algorithm) OID() asn1.ObjectIdentifier {
	switch a {
	case Ed25519:
		return oidEd25519
	case Ed448:
		return oidEd448
	case X25519:
		return oidX25519
	case X448:
		return oidX448
	default:
		return nil
	}
}

func algorithmFromOID(oid asn1.ObjectIdentifier) (Algorithm, error) {
	for _, a := range Algorithms {
		if oid.Equal(a.OID()) {
			return a, nil
		}
	}
	return UnknownAlgorithm, fmt.Errorf("%w: %w %s", ErrInvalidEncoding, errUnsupportedAlgorithm, oid)
}

// IsSigner reports whether a is an EdDSA algorithm.
func (a Algorithm) IsSigner() bool {
	return a == Ed25519 || a == Ed448
}

// IsAgreement reports whether a is a Diffie-Hellman algorithm.
func (a Algorithm) IsAgreement() bool {
	return a == X25519 || a == X448
}

// SeedSize returns the length of a private key seed.
func (a Algorithm) SeedSize() int {
	switch a {
	case Ed25519:
		return 32
	case Ed448:
		return 57
	case X25519:
		return xdh.Size25519
	case X448:
		return xdh.Size448
	default:
		return 0
	}
}

// PublicKeySize returns the length of a raw public key.
func (a Algorithm) PublicKeySize() int {
	switch a {
	case Ed25519:
		return ed25519.PointSize
	case Ed448:
		return ed448.PointSize
	case X25519:
		return xdh.Size25519
	case X448:
		return xdh.Size448
	default:
		return 0
	}
}

// SignatureSize returns the length of a signature, or 0 for algorithms that
// do not sign.
func (a Algorithm) SignatureSize() int {
	switch a {
	case Ed25519:
		return 2 * ed25519.PointSize
	case Ed448:
		return 2 * ed448.PointSize
	default:
		return 0
	}
}

// SharedSecretSize returns the length of an agreed secret, or 0 for
// algorithms that do not perform agreement.
func (a Algorithm) SharedSecretSize() int {
	switch a {
	case X25519:
		return xdh.Size25519
	case X448:
		return xdh.Size448
	default:
		return 0
	}
}

func (a Algorithm) curve() types.Curve {
	switch a {
	case Ed25519:
		return curve25519
	case Ed448:
		return curve448
	default:
		panic("no edwards curve for " + a.String())
	}
}
