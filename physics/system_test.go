// SPDX-License-Identifier: MIT

package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/physics"
)

// TestSystem_Validate checks that every unphysical field is rejected with ErrInvalidParameter.
func TestSystem_Validate(t *testing.T) {
	base := physics.DefaultSystem()
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*physics.System)
	}{
		{"ZeroTemperature", func(s *physics.System) { s.Temperature = 0 }},
		{"NaNTemperature", func(s *physics.System) { s.Temperature = math.NaN() }},
		{"NegativeConcentration", func(s *physics.System) { s.Concentration = -1 }},
		{"ZeroCationValency", func(s *physics.System) { s.CationValency = 0 }},
		{"ZeroAnionValency", func(s *physics.System) { s.AnionValency = 0 }},
		{"InfImpurity", func(s *physics.System) { s.ImpurityConcentration = math.Inf(1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			tc.mutate(&s)
			require.ErrorIs(t, s.Validate(), physics.ErrInvalidParameter)
		})
	}
}

// TestDebyeLength compares against the textbook 0.304/√c nm rule for a 1:1 salt in water at 298 K.
func TestDebyeLength(t *testing.T) {
	s := physics.System{Temperature: 298.15, Concentration: 0.1, CationValency: 1, AnionValency: 1}
	l, err := s.DebyeLength(78.4)
	require.NoError(t, err)
	require.InDelta(t, 0.304/math.Sqrt(0.1), l/physics.Nanometer, 0.005)

	_, err = s.DebyeLength(0)
	require.ErrorIs(t, err, physics.ErrInvalidParameter)

	s.Concentration = 0
	l, err = s.DebyeLength(80)
	require.NoError(t, err)
	require.True(t, math.IsInf(l, 1))
}

// TestElectrolyte_Electroneutral verifies z₊n₊ = z₋n₋ for an asymmetric salt.
func TestElectrolyte_Electroneutral(t *testing.T) {
	s := physics.System{Temperature: 300, Concentration: 0.5, CationValency: 2, AnionValency: 1}
	el := s.Electrolyte()
	require.InEpsilon(t, el.ZCation*el.NCation, el.ZAnion*el.NAnion, 1e-12)
	// the divalent species keeps the nominal concentration
	require.InEpsilon(t, physics.MolarToNumberDensity(0.5), el.NCation, 1e-12)

	c, a := el.Densities(0, 0, 0)
	require.InEpsilon(t, el.NCation, c, 1e-12)
	require.InEpsilon(t, el.NAnion, a, 1e-12)

	// a positive potential depletes cations and accumulates anions
	c, a = el.Densities(0.05, 0, 0)
	require.Less(t, c, el.NCation)
	require.Greater(t, a, el.NAnion)

	ic, ia := el.ImpurityDensities(0.05, 0, 0)
	require.Zero(t, ic)
	require.Zero(t, ia)
}

// TestUnitRoundTrip checks the e/nm² conversions.
func TestUnitRoundTrip(t *testing.T) {
	require.InDelta(t, 0.16021766, physics.SurfaceChargeSI(1), 1e-8)
	require.InDelta(t, 0.25, physics.SurfaceChargeUnits(physics.SurfaceChargeSI(0.25)), 1e-12)
	require.InDelta(t, 1.0, physics.PerCubicNanometer(1e27), 1e-12)
}
