// SPDX-License-Identifier: MIT

package operator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/operator"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

func mustBuild(t *testing.T, g *grid.Grid, eps profile.Function) (*profile.Profile, *operator.Operator) {
	t.Helper()
	p, err := profile.Build(g, physics.DefaultSystem(), profile.Inputs{Dielectric: eps})
	require.NoError(t, err)
	op, err := operator.Build(g, p)
	require.NoError(t, err)

	return p, op
}

// TestUniformDielectric checks the classic (−1, 2, −1)/h² stencil scaled by 1/ε.
func TestUniformDielectric(t *testing.T) {
	g, err := grid.New(1, 10)
	require.NoError(t, err)
	_, op := mustBuild(t, g, profile.Constant(80))

	h2 := g.SpacingSI() * g.SpacingSI()
	for i := 1; i < g.Intervals(); i++ {
		s, err := op.Stencil(i)
		require.NoError(t, err)
		require.InEpsilon(t, -1/(80*h2), s.A, 1e-12)
		require.InEpsilon(t, 2/(80*h2), s.B, 1e-12)
		require.InEpsilon(t, -1/(80*h2), s.C, 1e-12)
	}
	require.InEpsilon(t, 1/(80*80*physics.VacuumPermittivity), op.RHSScale(0), 1e-12)
}

// TestStencil_Boundaries verifies that boundary nodes have no stencil.
func TestStencil_Boundaries(t *testing.T) {
	g, err := grid.New(1, 4)
	require.NoError(t, err)
	_, op := mustBuild(t, g, profile.Constant(80))

	for _, i := range []int{-1, 0, 4, 5} {
		_, err := op.Stencil(i)
		require.ErrorIs(t, err, operator.ErrNotInterior, "node %d", i)
	}
	require.Equal(t, 5, op.Nodes())
	require.InDelta(t, 0.25e-9, op.Spacing(), 1e-24)
}

// TestApply_Quadratic: for uniform ε and φ = z², −e·d²φ/dz² = −2/ε exactly.
func TestApply_Quadratic(t *testing.T) {
	g, err := grid.New(2, 20)
	require.NoError(t, err)
	_, op := mustBuild(t, g, profile.Constant(4))

	z := g.CoordinatesSI()
	phi := make([]float64, len(z))
	for i, v := range z {
		phi[i] = v * v
	}
	for i := 1; i < g.Intervals(); i++ {
		require.InEpsilon(t, -2.0/4, op.Apply(phi, i), 1e-6)
	}
}

// TestApply_DielectricGradient: for φ = z and linear ε⊥⁻¹ the operator
// reduces to the cross term e'·φ' (the second-difference part vanishes).
func TestApply_DielectricGradient(t *testing.T) {
	g, err := grid.New(1, 10)
	require.NoError(t, err)
	// e(z) = 0.01 + 0.002·z  (z in nm) → de/dz = 0.002 per nm = 2e6 per m
	inv := profile.Func(func(z float64) float64 { return 0.01 + 0.002*z })
	_, op := mustBuild(t, g, profile.Inverse{Of: inv})

	z := g.CoordinatesSI()
	for i := 1; i < g.Intervals(); i++ {
		require.InEpsilon(t, 2e6, op.Apply(z, i), 1e-6, "node %d", i)
	}
}

// TestSolveLocal_InvertsApply ensures SolveLocal is the exact inverse of Apply at one node.
func TestSolveLocal_InvertsApply(t *testing.T) {
	g, err := grid.New(1, 10)
	require.NoError(t, err)
	_, op := mustBuild(t, g, profile.Step{Position: 0.45, Left: 5, Right: 80})

	phi := []float64{0.1, 0.3, -0.2, 0.05, 0.7, 0.2, 0.0, -0.4, 0.1, 0.9, 0.3}
	for i := 1; i < g.Intervals(); i++ {
		rhs := op.Apply(phi, i)
		require.InDelta(t, phi[i], op.SolveLocal(i, phi[i-1], phi[i+1], rhs), 1e-12)
	}
}

// TestBuild_ShapeMismatch ensures a profile from another grid is rejected.
func TestBuild_ShapeMismatch(t *testing.T) {
	g1, err := grid.New(1, 10)
	require.NoError(t, err)
	g2, err := grid.New(1, 12)
	require.NoError(t, err)
	p, _ := mustBuild(t, g1, profile.Constant(80))

	_, err = operator.Build(g2, p)
	require.ErrorIs(t, err, operator.ErrShapeMismatch)
}

func BenchmarkBuild(b *testing.B) {
	g, _ := grid.New(10, 10000)
	p, _ := profile.Build(g, physics.DefaultSystem(), profile.Inputs{Dielectric: profile.Constant(80)})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = operator.Build(g, p)
	}
}
