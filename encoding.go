package edec

import (
	"bytes"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

const (
	versionV1 = 0 // OneAsymmetricKey v1, numbered 0 on the wire
	versionV2 = 1
)

var (
	tagAttributes = cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()
	tagPublicKey  = cryptobyte_asn1.Tag(1).ContextSpecific()
)

// MarshalPublicKey returns the SubjectPublicKeyInfo encoding of pub. A key
// parsed with ParsePublicKey encodes to the bytes it was parsed from.
func MarshalPublicKey(pub *PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: public key is nil", ErrInvalidKey)
	}

	if pub.raw != nil {
		return bytes.Clone(pub.raw), nil
	}

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addAlgorithmIdentifier(b, pub.alg)
		b.AddASN1BitString(pub.key)
	})

	return b.Bytes()
}

// ParsePublicKey parses an RFC 8410 SubjectPublicKeyInfo. Algorithm
// parameters must be absent and the bit string must hold exactly one key.
func ParsePublicKey(der []byte) (*PublicKey, error) {
	input := cryptobyte.String(der)
	var spki cryptobyte.String
	if !input.ReadASN1(&spki, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed SubjectPublicKeyInfo", ErrInvalidEncoding)
	}

	alg, err := readAlgorithmIdentifier(&spki)
	if err != nil {
		return nil, err
	}

	var key []byte
	if !spki.ReadASN1BitStringAsBytes(&key) || !spki.Empty() {
		return nil, fmt.Errorf("%w: malformed public key bit string", ErrInvalidEncoding)
	}

	pub, err := NewPublicKey(alg, key)
	if err != nil {
		return nil, err
	}
	pub.raw = bytes.Clone(der)

	return pub, nil
}

// MarshalPrivateKey returns the OneAsymmetricKey (PKCS #8) encoding of priv.
// A key parsed with ParsePrivateKey encodes to the bytes it was parsed from.
// Otherwise keys from GenerateKey encode as version 2 with the public key,
// and keys from NewPrivateKey as version 1 without it.
func MarshalPrivateKey(priv *PrivateKey) ([]byte, error) {
	if err := priv.usable(); err != nil {
		return nil, err
	}

	if priv.raw != nil {
		return bytes.Clone(priv.raw), nil
	}

	version := int64(versionV1)
	if priv.withPublic {
		version = versionV2
	}

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(version)
		addAlgorithmIdentifier(b, priv.alg)
		b.AddASN1(cryptobyte_asn1.OCTET_STRING, func(b *cryptobyte.Builder) {
			b.AddASN1OctetString(priv.seed)
		})
		if priv.withPublic {
			b.AddASN1(tagPublicKey, func(b *cryptobyte.Builder) {
				b.AddUint8(0) // unused bits
				b.AddBytes(priv.pub.key)
			})
		}
	})

	return b.Bytes()
}

// ParsePrivateKey parses an RFC 8410 OneAsymmetricKey. Attributes are kept
// opaque. An embedded public key requires version 2 and must match the key
// derived from the seed.
func ParsePrivateKey(der []byte) (*PrivateKey, error) {
	input := cryptobyte.String(der)
	var (
		oak     cryptobyte.String
		version int64
	)
	if !input.ReadASN1(&oak, cryptobyte_asn1.SEQUENCE) || !input.Empty() ||
		!oak.ReadASN1Integer(&version) {
		return nil, fmt.Errorf("%w: malformed OneAsymmetricKey", ErrInvalidEncoding)
	}

	if version != versionV1 && version != versionV2 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, version)
	}

	alg, err := readAlgorithmIdentifier(&oak)
	if err != nil {
		return nil, err
	}

	var wrapped, seed cryptobyte.String
	if !oak.ReadASN1(&wrapped, cryptobyte_asn1.OCTET_STRING) ||
		!wrapped.ReadASN1(&seed, cryptobyte_asn1.OCTET_STRING) || !wrapped.Empty() {
		return nil, fmt.Errorf("%w: malformed private key octet string", ErrInvalidEncoding)
	}

	if !oak.SkipOptionalASN1(tagAttributes) {
		return nil, fmt.Errorf("%w: malformed attributes", ErrInvalidEncoding)
	}

	var (
		pubField   cryptobyte.String
		hasPublic  bool
		unusedBits uint8
	)
	if !oak.ReadOptionalASN1(&pubField, &hasPublic, tagPublicKey) {
		return nil, fmt.Errorf("%w: malformed public key", ErrInvalidEncoding)
	}
	if hasPublic {
		if version != versionV2 {
			return nil, fmt.Errorf("%w: public key requires version 2", ErrInvalidEncoding)
		}
		if !pubField.ReadUint8(&unusedBits) || unusedBits != 0 {
			return nil, fmt.Errorf("%w: malformed public key bit string", ErrInvalidEncoding)
		}
	}

	if !oak.Empty() {
		return nil, fmt.Errorf("%w: trailing data in OneAsymmetricKey", ErrInvalidEncoding)
	}

	priv, err := NewPrivateKey(alg, seed)
	if err != nil {
		return nil, err
	}

	if hasPublic && !bytes.Equal(pubField, priv.pub.key) {
		priv.Destroy()
		return nil, fmt.Errorf("%w: embedded public key does not match private key", ErrInvalidEncoding)
	}

	priv.withPublic = hasPublic
	priv.raw = bytes.Clone(der)

	return priv, nil
}

func addAlgorithmIdentifier(b *cryptobyte.Builder, alg Algorithm) {
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1ObjectIdentifier(alg.OID())
	})
}

// readAlgorithmIdentifier reads an AlgorithmIdentifier with absent
// parameters.
func readAlgorithmIdentifier(s *cryptobyte.String) (Algorithm, error) {
	var (
		algID cryptobyte.String
		oid   asn1.ObjectIdentifier
	)
	if !s.ReadASN1(&algID, cryptobyte_asn1.SEQUENCE) || !algID.ReadASN1ObjectIdentifier(&oid) {
		return UnknownAlgorithm, fmt.Errorf("%w: malformed algorithm identifier", ErrInvalidEncoding)
	}

	alg, err := algorithmFromOID(oid)
	if err != nil {
		return UnknownAlgorithm, err
	}

	if !algID.Empty() {
		return UnknownAlgorithm, fmt.Errorf("%w: algorithm parameters must be absent", ErrInvalidEncoding)
	}

	return alg, nil
}
