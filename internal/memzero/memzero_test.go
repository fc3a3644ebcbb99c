package memzero

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)

	Zero(nil)
	Zero([]byte{})
}

func TestZeroAll(t *testing.T) {
	a := []byte{0xff, 0xff}
	b := make([]byte, 57)
	for i := range b {
		b[i] = byte(i + 1)
	}
	ZeroAll(a, nil, b)
	require.Equal(t, make([]byte, 2), a)
	require.Equal(t, make([]byte, 57), b)
}
