package edec

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Certificate is the outer structure of an X.509 certificate: enough to check
// its signature. Names, validity and extensions are not interpreted.
type Certificate struct {
	Raw                []byte
	RawTBSCertificate  []byte
	SignatureAlgorithm Algorithm
	Signature          []byte
	// PublicKey is the subject key when it is one of the supported
	// algorithms, and nil otherwise.
	PublicKey *PublicKey
}

// ParseCertificate parses a DER certificate. An unsupported signature or
// subject key algorithm is not an error; SignatureAlgorithm is then
// UnknownAlgorithm and PublicKey is nil.
func ParseCertificate(der []byte) (*Certificate, error) {
	input := cryptobyte.String(der)
	var (
		cert, tbs, sigAlg cryptobyte.String
		sig               []byte
	)
	if !input.ReadASN1(&cert, cryptobyte_asn1.SEQUENCE) || !input.Empty() ||
		!cert.ReadASN1Element(&tbs, cryptobyte_asn1.SEQUENCE) ||
		!cert.ReadASN1Element(&sigAlg, cryptobyte_asn1.SEQUENCE) ||
		!cert.ReadASN1BitStringAsBytes(&sig) || !cert.Empty() {
		return nil, fmt.Errorf("%w: malformed certificate", ErrInvalidEncoding)
	}

	c := &Certificate{
		Raw:               bytes.Clone(der),
		RawTBSCertificate: bytes.Clone(tbs),
		Signature:         bytes.Clone(sig),
	}

	alg, err := readAlgorithmIdentifier(&sigAlg)
	switch {
	case err == nil && alg.IsSigner():
		c.SignatureAlgorithm = alg
	case err == nil, errors.Is(err, errUnsupportedAlgorithm):
		c.SignatureAlgorithm = UnknownAlgorithm
	default:
		return nil, fmt.Errorf("failed to read signature algorithm: %w", err)
	}

	spki, err := readSubjectPublicKeyInfo(tbs)
	if err != nil {
		return nil, err
	}

	pub, err := ParsePublicKey(spki)
	switch {
	case err == nil:
		c.PublicKey = pub
	case errors.Is(err, errUnsupportedAlgorithm):
	default:
		return nil, fmt.Errorf("failed to parse subject public key: %w", err)
	}

	return c, nil
}

// readSubjectPublicKeyInfo skips the TBSCertificate fields that precede the
// subject key and returns its full encoding.
func readSubjectPublicKeyInfo(tbs cryptobyte.String) ([]byte, error) {
	var body, spki cryptobyte.String
	if !tbs.ReadASN1(&body, cryptobyte_asn1.SEQUENCE) ||
		!body.SkipOptionalASN1(cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()) ||
		!body.SkipASN1(cryptobyte_asn1.INTEGER) || // serialNumber
		!body.SkipASN1(cryptobyte_asn1.SEQUENCE) || // signature
		!body.SkipASN1(cryptobyte_asn1.SEQUENCE) || // issuer
		!body.SkipASN1(cryptobyte_asn1.SEQUENCE) || // validity
		!body.SkipASN1(cryptobyte_asn1.SEQUENCE) || // subject
		!body.ReadASN1Element(&spki, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed TBSCertificate", ErrInvalidEncoding)
	}

	return spki, nil
}

// CheckSignature verifies the certificate signature with the issuer key pub.
func (c *Certificate) CheckSignature(pub *PublicKey) error {
	if !c.SignatureAlgorithm.IsSigner() {
		return fmt.Errorf("%w: unsupported signature algorithm", ErrInvalidSignature)
	}

	if pub == nil || pub.alg != c.SignatureAlgorithm {
		return fmt.Errorf("%w: issuer key must be %s", ErrInvalidKey, c.SignatureAlgorithm)
	}

	return Verify(pub, c.RawTBSCertificate, c.Signature)
}
