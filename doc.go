// Package edec implements the Edwards-curve signature schemes Ed25519 and
// Ed448 (RFC 8032), the Diffie-Hellman functions X25519 and X448 (RFC 7748),
// and the DER key containers of RFC 8410.
//
// Keys are created with GenerateKey or NewPrivateKey, or parsed from
// SubjectPublicKeyInfo and OneAsymmetricKey (PKCS #8) encodings. A parsed key
// remembers the bytes it was decoded from and re-encodes to exactly those
// bytes, including any attributes and embedded public key it carried.
//
// All operations are safe for concurrent use. Signing is deterministic, and
// agreement applies no key derivation function to the shared secret.
package edec
