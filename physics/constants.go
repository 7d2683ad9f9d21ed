// SPDX-License-Identifier: MIT

package physics

// CODATA 2018 exact / recommended values, SI units.
const (
	// ElementaryCharge e in C.
	ElementaryCharge = 1.602176634e-19
	// VacuumPermittivity ε₀ in F/m.
	VacuumPermittivity = 8.8541878128e-12
	// Boltzmann k_B in J/K.
	Boltzmann = 1.380649e-23
	// Avogadro N_A in 1/mol.
	Avogadro = 6.02214076e23
)

// Length and volume scales used at the package boundaries.
const (
	Nanometer = 1e-9
	// LitrePerCubicMeter converts mol/l into mol/m³.
	LitrePerCubicMeter = 1e3
	// CubicNanometer in m³.
	CubicNanometer = Nanometer * Nanometer * Nanometer
	// SquareNanometer in m².
	SquareNanometer = Nanometer * Nanometer
)

// MolarToNumberDensity converts a concentration in mol/l to particles per m³.
func MolarToNumberDensity(c float64) float64 {
	return c * LitrePerCubicMeter * Avogadro
}

// SurfaceChargeSI converts a surface charge in e/nm² to C/m².
func SurfaceChargeSI(sigma float64) float64 {
	return sigma * ElementaryCharge / SquareNanometer
}

// SurfaceChargeUnits converts a surface charge in C/m² back to e/nm².
func SurfaceChargeUnits(sigma float64) float64 {
	return sigma * SquareNanometer / ElementaryCharge
}

// ChargeDensitySI converts a volume charge density in e/nm³ to C/m³.
func ChargeDensitySI(rho float64) float64 {
	return rho * ElementaryCharge / CubicNanometer
}

// PerCubicNanometer converts a number density in m⁻³ to nm⁻³.
func PerCubicNanometer(n float64) float64 {
	return n * CubicNanometer
}
