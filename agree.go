package edec

import (
	"crypto/subtle"
	"fmt"

	"github.com/athanorlabs/go-edec/xdh"
)

// Agree computes the X25519 or X448 shared secret between priv and peer. The
// secret is the raw u-coordinate; callers apply their own key derivation.
//
// A low-order peer key yields an all-zero secret without error. Use
// AgreeStrict to reject it.
func Agree(priv *PrivateKey, peer *PublicKey) ([]byte, error) {
	if err := priv.usable(); err != nil {
		return nil, err
	}

	if !priv.alg.IsAgreement() {
		return nil, fmt.Errorf("%w: %s keys cannot agree", ErrInvalidKey, priv.alg)
	}

	if peer == nil || peer.alg != priv.alg {
		return nil, fmt.Errorf("%w: peer key must be %s", ErrInvalidKey, priv.alg)
	}

	var (
		secret []byte
		err    error
	)
	switch priv.alg {
	case X25519:
		secret, err = xdh.X25519(priv.seed, peer.key)
	case X448:
		secret, err = xdh.X448(priv.seed, peer.key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return secret, nil
}

// AgreeStrict is Agree but fails with ErrAgreementFailure when the secret is
// all zeros, which happens exactly when the peer key has low order.
func AgreeStrict(priv *PrivateKey, peer *PublicKey) ([]byte, error) {
	secret, err := Agree(priv, peer)
	if err != nil {
		return nil, err
	}

	zero := make([]byte, len(secret))
	if subtle.ConstantTimeCompare(secret, zero) == 1 {
		return nil, fmt.Errorf("%w: low order peer key", ErrAgreementFailure)
	}

	return secret, nil
}

// ECDH is Agree(k, peer).
func (k *PrivateKey) ECDH(peer *PublicKey) ([]byte, error) {
	return Agree(k, peer)
}
