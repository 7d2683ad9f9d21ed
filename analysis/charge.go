// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

// IntegratedCharge returns ∫ρ dz over the grid (trapezoidal rule) in C/m²
// for a charge density rho in C/m³.
func IntegratedCharge(g *grid.Grid, rho []float64) (float64, error) {
	if len(rho) != g.Nodes() {
		return 0, fmt.Errorf("len(rho)=%d, nodes=%d: %w", len(rho), g.Nodes(), ErrLengthMismatch)
	}

	return integrate.Trapezoidal(g.CoordinatesSI(), rho), nil
}

// ExcessCharge returns the charge per wall area held between the walls in
// e/nm². At equilibrium it balances the wall charges: ExcessCharge ≈ −(σ_L + σ_R).
func ExcessCharge(g *grid.Grid, p *profile.Profile, phi []float64) (float64, error) {
	rho, err := ChargeDensity(p, phi)
	if err != nil {
		return 0, err
	}
	q, err := IntegratedCharge(g, rho)
	if err != nil {
		return 0, err
	}

	return physics.SurfaceChargeUnits(q), nil
}
