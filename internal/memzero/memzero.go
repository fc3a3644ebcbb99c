// Package memzero clears secret material held in byte slices.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}

// ZeroAll clears every slice in bs.
func ZeroAll(bs ...[]byte) {
	for _, b := range bs {
		Zero(b)
	}
}
