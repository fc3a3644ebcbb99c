package edec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgree_Vectors(t *testing.T) {
	cases := []struct {
		alg             Algorithm
		alice, alicePub string
		bob, bobPub     string
		shared          string
	}{
		{
			alg:      X25519,
			alice:    "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a",
			alicePub: "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a",
			bob:      "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb",
			bobPub:   "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f",
			shared:   "4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742",
		},
		{
			alg:      X448,
			alice:    "9a8f4925d1519f5775cf46b04b5800d4ee9ee8bae8bc5565d498c28dd9c9baf574a9419744897391006382a6f127ab1d9ac2d8c0a598726b",
			alicePub: "9b08f7cc31b7e3e67d22d5aea121074a273bd2b83de09c63faa73d2c22c5d9bbc836647241d953d40c5b12da88120d53177f80e532c41fa0",
			bob:      "1c306a7ac2a0e2e0990b294470cba339e6453772b075811d8fad0d1d6927c120bb5ee8972b0d3e21374c9c921b09d1b0366f10b65173992d",
			bobPub:   "3eb7a829b0cd20f5bcfc0b599b6feccf6da4627107bdb0d4f345b43027d8b972fc3e34fb4232a13ca706dcb57aec3dae07bdc1c67bf33609",
			shared:   "07fff4181ac6cc95ec1c16a94a0f74d12da232ce40a77552281d282bb60c0b56fd2464c335543936521c24403085d59a449a5037514a879d",
		},
	}

	for _, c := range cases {
		t.Run(c.alg.String(), func(t *testing.T) {
			alice, err := NewPrivateKey(c.alg, mustHex(t, c.alice))
			require.NoError(t, err)
			require.Equal(t, c.alicePub, hex.EncodeToString(alice.PublicKey().Bytes()))

			bob, err := NewPrivateKey(c.alg, mustHex(t, c.bob))
			require.NoError(t, err)
			require.Equal(t, c.bobPub, hex.EncodeToString(bob.PublicKey().Bytes()))

			s1, err := Agree(alice, bob.PublicKey())
			require.NoError(t, err)
			s2, err := bob.ECDH(alice.PublicKey())
			require.NoError(t, err)
			require.Equal(t, c.shared, hex.EncodeToString(s1))
			require.Equal(t, s1, s2)
			require.Len(t, s1, c.alg.SharedSecretSize())

			s3, err := AgreeStrict(alice, bob.PublicKey())
			require.NoError(t, err)
			require.Equal(t, s1, s3)
		})
	}
}

func TestAgree_Symmetric(t *testing.T) {
	for _, alg := range []Algorithm{X25519, X448} {
		a, aPub, err := GenerateKey(alg, nil)
		require.NoError(t, err)
		b, bPub, err := GenerateKey(alg, nil)
		require.NoError(t, err)

		s1, err := Agree(a, bPub)
		require.NoError(t, err)
		s2, err := Agree(b, aPub)
		require.NoError(t, err)
		require.Equal(t, s1, s2)
	}
}

func TestAgree_LowOrderPeer(t *testing.T) {
	for _, alg := range []Algorithm{X25519, X448} {
		priv, _, err := GenerateKey(alg, nil)
		require.NoError(t, err)

		// u = 0 has low order on both curves
		zero, err := NewPublicKey(alg, make([]byte, alg.PublicKeySize()))
		require.NoError(t, err)

		secret, err := Agree(priv, zero)
		require.NoError(t, err)
		require.Equal(t, make([]byte, alg.SharedSecretSize()), secret)

		_, err = AgreeStrict(priv, zero)
		require.ErrorIs(t, err, ErrAgreementFailure)
	}
}

func TestAgree_InvalidKeys(t *testing.T) {
	x25519, _, err := GenerateKey(X25519, nil)
	require.NoError(t, err)
	_, x448Pub, err := GenerateKey(X448, nil)
	require.NoError(t, err)
	ed, edPub, err := GenerateKey(Ed25519, nil)
	require.NoError(t, err)

	_, err = Agree(x25519, x448Pub)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = Agree(x25519, edPub)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = Agree(x25519, nil)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = Agree(ed, edPub)
	require.ErrorIs(t, err, ErrInvalidKey)
	_, err = Agree(nil, x448Pub)
	require.ErrorIs(t, err, ErrInvalidKey)

	x25519.Destroy()
	_, err = Agree(x25519, x25519.PublicKey())
	require.ErrorIs(t, err, ErrInvalidKey)
}

func BenchmarkAgree(b *testing.B) {
	for _, alg := range []Algorithm{X25519, X448} {
		priv, _, err := GenerateKey(alg, nil)
		require.NoError(b, err)
		_, peer, err := GenerateKey(alg, nil)
		require.NoError(b, err)
		b.Run(alg.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = Agree(priv, peer)
			}
		})
	}
}
