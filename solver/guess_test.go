// SPDX-License-Identifier: MIT

package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
	"github.com/katalvlaran/lvpbe/solver"
	"github.com/katalvlaran/lvpbe/sor"
)

func TestZeroGuess(t *testing.T) {
	p := newProblem(t, 2, 4, sor.Potential(0.3), sor.Symmetry())
	require.Equal(t, []float64{0.3, 0, 0, 0, 0}, solver.ZeroGuess(p))
}

func TestLinearGuess(t *testing.T) {
	p := newProblem(t, 2, 4, sor.Potential(0.2), sor.Potential(-0.2))
	got := solver.LinearGuess(p)
	want := []float64{0.2, 0.1, 0, -0.1, -0.2}
	for i := range want {
		require.InDelta(t, want[i], got[i], 1e-15)
	}

	p = newProblem(t, 2, 4, sor.SurfaceCharge(0.01), sor.Potential(0.05))
	require.Equal(t, []float64{0.05, 0.05, 0.05, 0.05, 0.05}, solver.LinearGuess(p))

	p = newProblem(t, 2, 4, sor.Symmetry(), sor.Symmetry())
	require.Equal(t, make([]float64, 5), solver.LinearGuess(p))
}

func TestGouyChapmanGuess(t *testing.T) {
	p := newProblem(t, 20, 200, sor.SurfaceCharge(0.01), sor.Symmetry())
	phi := solver.GouyChapmanGuess(p)

	debye, err := salt01().DebyeLength(80)
	require.NoError(t, err)
	wall := 0.01 * debye / (physics.VacuumPermittivity * 80)
	require.InEpsilon(t, wall, phi[0], 1e-12)
	for i := 1; i < len(phi); i++ {
		require.Less(t, phi[i], phi[i-1])
	}
	require.Less(t, phi[200], wall*1e-8)

	// potential walls keep their values
	p = newProblem(t, 20, 200, sor.Potential(0.1), sor.Potential(0.1))
	phi = solver.GouyChapmanGuess(p)
	require.Equal(t, 0.1, phi[0])
	require.Equal(t, 0.1, phi[200])
	require.InDelta(t, phi[50], phi[150], 1e-15)
}

func TestGouyChapmanGuess_SaltFreeFallsBack(t *testing.T) {
	g, err := grid.New(1, 4)
	require.NoError(t, err)
	sys := physics.DefaultSystem()
	sys.Concentration = 0
	p, err := solver.NewProblem(g, sys, profile.Inputs{Dielectric: profile.Constant(80)}, sor.Potential(0.4), sor.Potential(0))
	require.NoError(t, err)
	require.Equal(t, solver.LinearGuess(p), solver.GouyChapmanGuess(p))
}
