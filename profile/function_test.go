// SPDX-License-Identifier: MIT

package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/profile"
)

func TestConstantStepFunc(t *testing.T) {
	assert.Equal(t, 80.0, profile.Constant(80).At(-3))

	s := profile.Step{Position: 1, Left: 2, Right: 80}
	assert.Equal(t, 2.0, s.At(0.999))
	assert.Equal(t, 80.0, s.At(1))
	assert.Equal(t, 80.0, s.At(5))

	f := profile.Func(func(z float64) float64 { return 2 * z })
	assert.Equal(t, 3.0, f.At(1.5))

	inv := profile.Inverse{Of: profile.Constant(0.0125)}
	assert.InDelta(t, 80.0, inv.At(0), 1e-12)
	assert.True(t, math.IsInf(profile.Inverse{Of: profile.Constant(0)}.At(0), 1))
}

func TestTabulated(t *testing.T) {
	tab, err := profile.NewTabulated([]float64{0, 1, 2}, []float64{10, 20, 40})
	require.NoError(t, err)

	assert.Equal(t, 10.0, tab.At(-1), "held below range")
	assert.Equal(t, 15.0, tab.At(0.5))
	assert.Equal(t, 30.0, tab.At(1.5))
	assert.Equal(t, 40.0, tab.At(2))
	assert.Equal(t, 40.0, tab.At(7), "held above range")
}

func TestTabulated_Errors(t *testing.T) {
	cases := []struct {
		name   string
		zs, vs []float64
	}{
		{"LengthMismatch", []float64{0, 1}, []float64{1}},
		{"TooShort", []float64{0}, []float64{1}},
		{"NotIncreasing", []float64{0, 1, 1}, []float64{1, 2, 3}},
		{"NaN", []float64{0, 1}, []float64{1, math.NaN()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := profile.NewTabulated(tc.zs, tc.vs)
			require.ErrorIs(t, err, profile.ErrInvalidParameter)
		})
	}
}

func TestNewNodal(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	n, err := profile.NewNodal(g, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2.5, n.At(1.5))

	_, err = profile.NewNodal(g, []float64{1, 2})
	require.ErrorIs(t, err, profile.ErrInvalidParameter)
}
