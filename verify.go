package edec

import "fmt"

// Verify checks a pure Ed25519 or Ed448 signature. It returns nil if the
// signature is valid and an error wrapping ErrInvalidSignature otherwise.
// A public key that is not a valid point is reported as ErrInvalidKey.
func Verify(pub *PublicKey, message, sig []byte) error {
	return VerifyWithOptions(pub, message, sig, nil)
}

// VerifyWithOptions checks a signature made with the variant selected by
// opts.
func VerifyWithOptions(pub *PublicKey, message, sig []byte, opts *Options) error {
	if pub == nil {
		return fmt.Errorf("%w: public key is nil", ErrInvalidKey)
	}

	if !pub.alg.IsSigner() {
		return fmt.Errorf("%w: %s keys cannot verify", ErrInvalidKey, pub.alg)
	}

	if err := opts.validate(); err != nil {
		return err
	}

	preHash, ctx := opts.params()
	if preHash {
		message = prehash(pub.alg, message)
	}

	return verifyEdDSA(pub.alg, pub.key, message, sig, preHash, ctx)
}
