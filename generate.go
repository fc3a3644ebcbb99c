package edec

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/athanorlabs/go-edec/internal/memzero"
)

// GenerateKey returns a new key pair for alg, reading the seed from random,
// or from crypto/rand.Reader if random is nil. The private key's encoding
// carries its public key.
func GenerateKey(alg Algorithm, random io.Reader) (*PrivateKey, *PublicKey, error) {
	if alg.SeedSize() == 0 {
		return nil, nil, fmt.Errorf("%w: cannot generate %s keys", ErrInvalidKey, alg)
	}

	if random == nil {
		random = rand.Reader
	}

	seed := make([]byte, alg.SeedSize())
	defer memzero.Zero(seed)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, nil, fmt.Errorf("failed to read seed: %w", err)
	}

	priv, err := NewPrivateKey(alg, seed)
	if err != nil {
		return nil, nil, err
	}
	priv.withPublic = true

	return priv, priv.pub, nil
}
