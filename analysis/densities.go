// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

// Densities holds per-node number densities in nm⁻³.
// Impurity slices are all zero when the system carries no impurity.
type Densities struct {
	Cation         []float64
	Anion          []float64
	ImpurityCation []float64
	ImpurityAnion  []float64
}

// IonDensities evaluates n±(z) = n±·exp(∓z±eβφ − βV±) and the impurity
// pair at every node.
func IonDensities(p *profile.Profile, phi []float64) (*Densities, error) {
	if err := fits(p, phi); err != nil {
		return nil, err
	}
	el := p.Electrolyte()
	n := len(phi)
	d := &Densities{
		Cation:         make([]float64, n),
		Anion:          make([]float64, n),
		ImpurityCation: make([]float64, n),
		ImpurityAnion:  make([]float64, n),
	}
	for i, v := range phi {
		pc, pa := p.PMF(i)
		c, a := el.Densities(v, pc, pa)
		d.Cation[i] = physics.PerCubicNanometer(c)
		d.Anion[i] = physics.PerCubicNanometer(a)

		ic, ia := p.ImpurityPMF(i)
		c, a = el.ImpurityDensities(v, ic, ia)
		d.ImpurityCation[i] = physics.PerCubicNanometer(c)
		d.ImpurityAnion[i] = physics.PerCubicNanometer(a)
	}

	return d, nil
}

// ChargeDensity returns the net charge density ρ(z) in C/m³, fixed charge
// included. It is the unclamped counterpart of the density used in a sweep.
func ChargeDensity(p *profile.Profile, phi []float64) ([]float64, error) {
	d, err := IonDensities(p, phi)
	if err != nil {
		return nil, err
	}
	el := p.Electrolyte()
	rho := make([]float64, len(phi))
	for i := range rho {
		ions := el.ZCation*d.Cation[i] - el.ZAnion*d.Anion[i] + d.ImpurityCation[i] - d.ImpurityAnion[i]
		rho[i] = p.FixedCharge(i) + physics.ChargeDensitySI(ions)
	}

	return rho, nil
}

func fits(p *profile.Profile, phi []float64) error {
	if len(phi) != p.Len() {
		return fmt.Errorf("len(phi)=%d, nodes=%d: %w", len(phi), p.Len(), ErrLengthMismatch)
	}

	return nil
}
