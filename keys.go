package edec

import (
	"bytes"
	"crypto"
	"crypto/subtle"
	"fmt"

	"github.com/athanorlabs/go-edec/internal/memzero"
	"github.com/athanorlabs/go-edec/xdh"
)

// PublicKey is an Ed25519, Ed448, X25519 or X448 public key.
type PublicKey struct {
	alg Algorithm
	key []byte
	// raw is the SubjectPublicKeyInfo the key was parsed from.
	raw []byte
}

// NewPublicKey returns the public key of algorithm alg with raw encoding key.
// EdDSA keys must be valid point encodings.
func NewPublicKey(alg Algorithm, key []byte) (*PublicKey, error) {
	if alg.PublicKeySize() == 0 {
		return nil, fmt.Errorf("%w: %w %s", ErrInvalidEncoding, errUnsupportedAlgorithm, alg)
	}

	if len(key) != alg.PublicKeySize() {
		return nil, fmt.Errorf("%w: %s public key is %d bytes, expected %d",
			ErrInvalidEncoding, alg, len(key), alg.PublicKeySize())
	}

	if alg.IsSigner() {
		if _, err := alg.curve().DecodePoint(key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
	}

	return &PublicKey{
		alg: alg,
		key: bytes.Clone(key),
	}, nil
}

func (k *PublicKey) Algorithm() Algorithm {
	return k.alg
}

// Bytes returns a copy of the raw public key.
func (k *PublicKey) Bytes() []byte {
	return bytes.Clone(k.key)
}

// Equal reports whether x is a public key of the same algorithm and value.
func (k *PublicKey) Equal(x crypto.PublicKey) bool {
	xx, ok := x.(*PublicKey)
	if !ok || xx == nil {
		return false
	}
	return k.alg == xx.alg && bytes.Equal(k.key, xx.key)
}

// PrivateKey is an Ed25519, Ed448, X25519 or X448 private key. It holds the
// seed and the public key derived from it.
type PrivateKey struct {
	alg  Algorithm
	seed []byte
	pub  *PublicKey
	// withPublic marks keys whose encoding carries the public key.
	withPublic bool
	// raw is the OneAsymmetricKey the key was parsed from.
	raw []byte
}

// NewPrivateKey returns the private key of algorithm alg with the given seed.
// Its encoding does not carry the public key.
func NewPrivateKey(alg Algorithm, seed []byte) (*PrivateKey, error) {
	if alg.SeedSize() == 0 {
		return nil, fmt.Errorf("%w: %w %s", ErrInvalidEncoding, errUnsupportedAlgorithm, alg)
	}

	if len(seed) != alg.SeedSize() {
		return nil, fmt.Errorf("%w: %s private key is %d bytes, expected %d",
			ErrInvalidEncoding, alg, len(seed), alg.SeedSize())
	}

	pub, err := derivePublic(alg, seed)
	if err != nil {
		return nil, err
	}

	return &PrivateKey{
		alg:  alg,
		seed: bytes.Clone(seed),
		pub: &PublicKey{
			alg: alg,
			key: pub,
		},
	}, nil
}

func derivePublic(alg Algorithm, seed []byte) ([]byte, error) {
	switch alg {
	case Ed25519, Ed448:
		return derivePublicEdDSA(alg, seed)
	case X25519:
		return xdh.X25519(seed, xdh.Basepoint25519())
	case X448:
		return xdh.X448(seed, xdh.Basepoint448())
	default:
		return nil, fmt.Errorf("%w: %w %s", ErrInvalidEncoding, errUnsupportedAlgorithm, alg)
	}
}

func (k *PrivateKey) Algorithm() Algorithm {
	return k.alg
}

// Seed returns a copy of the private key seed.
func (k *PrivateKey) Seed() []byte {
	return bytes.Clone(k.seed)
}

// Public returns the public key corresponding to k, as a *PublicKey.
func (k *PrivateKey) Public() crypto.PublicKey {
	return k.pub
}

func (k *PrivateKey) PublicKey() *PublicKey {
	return k.pub
}

// Equal reports whether x is a private key of the same algorithm and seed.
func (k *PrivateKey) Equal(x crypto.PrivateKey) bool {
	xx, ok := x.(*PrivateKey)
	if !ok || xx == nil {
		return false
	}
	return k.alg == xx.alg && subtle.ConstantTimeCompare(k.seed, xx.seed) == 1
}

// Destroy wipes the seed and any encoding held by k. The key cannot be used
// afterwards.
func (k *PrivateKey) Destroy() {
	memzero.ZeroAll(k.seed, k.raw)
	k.seed = nil
	k.raw = nil
}

func (k *PrivateKey) usable() error {
	if k == nil || k.seed == nil {
		return fmt.Errorf("%w: private key is nil or destroyed", ErrInvalidKey)
	}
	return nil
}
