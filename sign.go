package edec

import (
	"crypto"
	"fmt"
	"io"
)

// Options selects the EdDSA variant. The zero value is pure Ed25519 or Ed448
// with an empty context.
type Options struct {
	// Context is the domain separation context, at most 255 bytes. A
	// non-empty context with Ed25519 selects Ed25519ctx.
	Context string
	// PreHash selects Ed25519ph or Ed448ph. The message is hashed with
	// SHA-512 or SHAKE256 respectively before signing.
	PreHash bool
}

// HashFunc returns zero: with Options the message passed to Sign is always
// the message itself, never a digest.
func (o *Options) HashFunc() crypto.Hash {
	return 0
}

func (o *Options) validate() error {
	if o != nil && len(o.Context) > 255 {
		return fmt.Errorf("%w: context is %d bytes, at most 255 allowed", ErrInvalidOptions, len(o.Context))
	}
	return nil
}

func (o *Options) params() (bool, []byte) {
	if o == nil {
		return false, nil
	}
	return o.PreHash, []byte(o.Context)
}

// Sign signs message with pure Ed25519 or Ed448. The signature is
// deterministic.
func Sign(priv *PrivateKey, message []byte) ([]byte, error) {
	return SignWithOptions(priv, message, nil)
}

// SignWithOptions signs message with the variant selected by opts. A nil opts
// is equivalent to Sign.
func SignWithOptions(priv *PrivateKey, message []byte, opts *Options) ([]byte, error) {
	if err := priv.usable(); err != nil {
		return nil, err
	}

	if !priv.alg.IsSigner() {
		return nil, fmt.Errorf("%w: %s keys cannot sign", ErrInvalidKey, priv.alg)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	preHash, ctx := opts.params()
	if preHash {
		message = prehash(priv.alg, message)
	}

	return signEdDSA(priv.alg, priv.seed, priv.pub.key, message, preHash, ctx)
}

// Sign implements crypto.Signer. With an *Options value, message is signed as
// by SignWithOptions. Otherwise opts.HashFunc must be zero, or crypto.SHA512
// for Ed25519, in which case message is the SHA-512 digest to sign with
// Ed25519ph. rand is ignored.
func (k *PrivateKey) Sign(_ io.Reader, message []byte, opts crypto.SignerOpts) ([]byte, error) {
	if o, ok := opts.(*Options); ok {
		return SignWithOptions(k, message, o)
	}

	if opts == nil {
		return SignWithOptions(k, message, nil)
	}

	if err := k.usable(); err != nil {
		return nil, err
	}

	switch h := opts.HashFunc(); {
	case h == 0:
		return SignWithOptions(k, message, nil)
	case h == crypto.SHA512 && k.alg == Ed25519:
		if len(message) != crypto.SHA512.Size() {
			return nil, fmt.Errorf("%w: digest is %d bytes", ErrInvalidOptions, len(message))
		}
		return signEdDSA(k.alg, k.seed, k.pub.key, message, true, nil)
	default:
		return nil, fmt.Errorf("%w: %s cannot sign %s digests", ErrInvalidOptions, k.alg, h)
	}
}
