// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Millivolts returns φ scaled from V to mV.
func Millivolts(phi []float64) []float64 {
	out := make([]float64, len(phi))
	floats.ScaleTo(out, 1e3, phi)

	return out
}

// Minimum returns the node and value of the smallest φ. Empty input yields (-1, 0).
func Minimum(phi []float64) (int, float64) {
	if len(phi) == 0 {
		return -1, 0
	}
	i := floats.MinIdx(phi)

	return i, phi[i]
}

// Mirror reflects a half-space profile about its last node, the midplane:
// the result covers [0, 2·z_N] with 2N+1 nodes and the midplane appears once.
func Mirror(z, v []float64) (zz, vv []float64, err error) {
	if len(z) != len(v) {
		return nil, nil, fmt.Errorf("len(z)=%d, len(v)=%d: %w", len(z), len(v), ErrLengthMismatch)
	}
	n := len(z)
	if n == 0 {
		return nil, nil, nil
	}
	mid := z[n-1]
	zz = make([]float64, 2*n-1)
	vv = make([]float64, 2*n-1)
	copy(zz, z)
	copy(vv, v)
	for k := 1; k < n; k++ {
		zz[n-1+k] = 2*mid - z[n-1-k]
		vv[n-1+k] = v[n-1-k]
	}

	return zz, vv, nil
}
