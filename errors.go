package edec

import "errors"

var (
	// ErrInvalidEncoding is returned for malformed key containers, wrong key
	// lengths, invalid point encodings and unsupported algorithm identifiers.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidSignature is returned when a signature does not verify or is
	// malformed.
	ErrInvalidSignature = errors.New("invalid signature")
	// ErrAgreementFailure is returned by AgreeStrict when the shared secret
	// is all zeros.
	ErrAgreementFailure = errors.New("key agreement failure")
	// ErrInvalidKey is returned when a key is nil, destroyed, or belongs to
	// an algorithm that cannot perform the requested operation.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidOptions is returned for signing options an algorithm does
	// not support.
	ErrInvalidOptions = errors.New("invalid options")

	errUnsupportedAlgorithm = errors.New("unsupported algorithm identifier")
)
