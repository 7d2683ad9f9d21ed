// SPDX-License-Identifier: MIT

package physics

import "math"

// Electrolyte is the read-only ionic model evaluated at every grid node.
// Number densities are in m⁻³, Beta in 1/J and EBeta (e·β) in 1/V.
type Electrolyte struct {
	Beta, EBeta     float64
	ZCation, ZAnion float64
	NCation, NAnion float64
	NImpurity       float64
}

// KappaSquared returns the inverse squared Debye length in m⁻² for a
// uniform relative permittivity eps.
func (el Electrolyte) KappaSquared(eps float64) float64 {
	ionic := el.ZCation*el.ZCation*el.NCation + el.ZAnion*el.ZAnion*el.NAnion + 2*el.NImpurity

	return ElementaryCharge * el.EBeta * ionic / (VacuumPermittivity * eps)
}

// BoltzmannFactors returns the reduced exponents of the cation and anion
// Boltzmann factors at potential phi (V) with PMFs given in k_B·T:
//
//	−z₊·e·β·φ − βV₊   and   +z₋·e·β·φ − βV₋
func (el Electrolyte) BoltzmannFactors(phi, pmfCation, pmfAnion float64) (cation, anion float64) {
	x := el.EBeta * phi

	return -el.ZCation*x - pmfCation, el.ZAnion*x - pmfAnion
}

// Densities returns the local ion number densities (m⁻³) at potential phi.
// No clamping is applied; use it on converged potentials.
func (el Electrolyte) Densities(phi, pmfCation, pmfAnion float64) (cation, anion float64) {
	c, a := el.BoltzmannFactors(phi, pmfCation, pmfAnion)

	return el.NCation * math.Exp(c), el.NAnion * math.Exp(a)
}

// ImpurityDensities returns the local impurity cation/anion densities (m⁻³).
// The impurity electrolyte is always monovalent.
func (el Electrolyte) ImpurityDensities(phi, pmfCation, pmfAnion float64) (cation, anion float64) {
	if el.NImpurity == 0 {
		return 0, 0
	}
	x := el.EBeta * phi

	return el.NImpurity * math.Exp(-x-pmfCation), el.NImpurity * math.Exp(x-pmfAnion)
}
