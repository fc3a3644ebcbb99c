package edec

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}

	got, err := ParseAlgorithm("ed448")
	require.NoError(t, err)
	require.Equal(t, Ed448, got)

	_, err = ParseAlgorithm("secp256k1")
	require.Error(t, err)
	require.Equal(t, "Algorithm(0)", UnknownAlgorithm.String())
}

func TestAlgorithm_Sizes(t *testing.T) {
	cases := []struct {
		alg                       Algorithm
		seed, public, sig, shared int
		signer, agreement         bool
	}{
		{Ed25519, 32, 32, 64, 0, true, false},
		{Ed448, 57, 57, 114, 0, true, false},
		{X25519, 32, 32, 0, 32, false, true},
		{X448, 56, 56, 0, 56, false, true},
		{UnknownAlgorithm, 0, 0, 0, 0, false, false},
	}

	for _, c := range cases {
		require.Equal(t, c.seed, c.alg.SeedSize(), c.alg)
		require.Equal(t, c.public, c.alg.PublicKeySize(), c.alg)
		require.Equal(t, c.sig, c.alg.SignatureSize(), c.alg)
		require.Equal(t, c.shared, c.alg.SharedSecretSize(), c.alg)
		require.Equal(t, c.signer, c.alg.IsSigner(), c.alg)
		require.Equal(t, c.agreement, c.alg.IsAgreement(), c.alg)
	}

	require.Equal(t, "1.3.101.113", Ed448.OID().String())
	require.Nil(t, UnknownAlgorithm.OID())
}

func TestGenerateKey_Reader(t *testing.T) {
	seed := mustHex(t, fixtureSeed)
	priv, pub, err := GenerateKey(Ed25519, bytes.NewReader(seed))
	require.NoError(t, err)
	require.Equal(t, seed, priv.Seed())
	require.Equal(t, fixturePublic, hex.EncodeToString(pub.Bytes()))

	// short reads fail
	_, _, err = GenerateKey(Ed448, bytes.NewReader(seed))
	require.Error(t, err)

	_, _, err = GenerateKey(UnknownAlgorithm, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestPrivateKey_Accessors(t *testing.T) {
	priv, pub, err := GenerateKey(X448, nil)
	require.NoError(t, err)
	require.Same(t, pub, priv.PublicKey())
	require.Equal(t, X448, priv.Algorithm())

	// returned slices are copies
	seed := priv.Seed()
	seed[0] ^= 0xff
	require.NotEqual(t, seed, priv.Seed())
	key := pub.Bytes()
	key[0] ^= 0xff
	require.NotEqual(t, key, pub.Bytes())

	other, err := NewPrivateKey(X448, priv.Seed())
	require.NoError(t, err)
	require.True(t, other.Equal(priv))
	require.True(t, other.PublicKey().Equal(pub))
	require.False(t, other.Equal(nil))
	require.False(t, pub.Equal("not a key"))

	// same bytes, different algorithm
	ed, err := NewPrivateKey(Ed25519, make([]byte, 32))
	require.NoError(t, err)
	x, err := NewPrivateKey(X25519, make([]byte, 32))
	require.NoError(t, err)
	require.False(t, ed.Equal(x))
}

func TestPrivateKey_Destroy(t *testing.T) {
	priv, err := ParsePrivateKey(mustBase64(t, fixturePrivateKeyWithPublic))
	require.NoError(t, err)
	seed, raw := priv.seed, priv.raw

	priv.Destroy()
	require.Nil(t, priv.Seed())
	require.Equal(t, make([]byte, len(seed)), seed)
	require.Equal(t, make([]byte, len(raw)), raw)

	_, err = MarshalPrivateKey(priv)
	require.ErrorIs(t, err, ErrInvalidKey)

	// the public half stays usable
	require.Equal(t, fixturePublic, hex.EncodeToString(priv.PublicKey().Bytes()))

	// destroying twice is harmless
	priv.Destroy()
}
