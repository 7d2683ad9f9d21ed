// SPDX-License-Identifier: MIT

package physics

import (
	"fmt"
	"math"
)

// System describes the electrolyte and thermodynamic state of a solve.
// It is immutable for the duration of a solve and owned by the caller.
//
// Fields:
//   - Temperature           — absolute temperature in K (> 0).
//   - Concentration         — bulk salt concentration c₀ in mol/l (≥ 0).
//   - CationValency         — |z₊| ≥ 1.
//   - AnionValency          — |z₋| ≥ 1.
//   - ImpurityConcentration — bulk concentration of a monovalent impurity
//     electrolyte in mol/l (≥ 0, zero disables the species).
type System struct {
	Temperature           float64
	Concentration         float64
	CationValency         int
	AnionValency          int
	ImpurityConcentration float64
}

// Defaults mirror the reference command line: 300 K, 1 mol/l, 1:1 salt.
const (
	DefaultTemperature   = 300.0
	DefaultConcentration = 1.0
	DefaultValency       = 1
)

// DefaultSystem returns a 1:1 electrolyte at DefaultConcentration and
// DefaultTemperature with no impurities.
func DefaultSystem() System {
	return System{
		Temperature:   DefaultTemperature,
		Concentration: DefaultConcentration,
		CationValency: DefaultValency,
		AnionValency:  DefaultValency,
	}
}

// Validate reports ErrInvalidParameter (wrapped with the offending field)
// when the bundle is unphysical.
func (s System) Validate() error {
	switch {
	case !isFinite(s.Temperature) || s.Temperature <= 0:
		return fmt.Errorf("temperature %g K: %w", s.Temperature, ErrInvalidParameter)
	case !isFinite(s.Concentration) || s.Concentration < 0:
		return fmt.Errorf("concentration %g mol/l: %w", s.Concentration, ErrInvalidParameter)
	case s.CationValency < 1:
		return fmt.Errorf("cation valency %d: %w", s.CationValency, ErrInvalidParameter)
	case s.AnionValency < 1:
		return fmt.Errorf("anion valency %d: %w", s.AnionValency, ErrInvalidParameter)
	case !isFinite(s.ImpurityConcentration) || s.ImpurityConcentration < 0:
		return fmt.Errorf("impurity concentration %g mol/l: %w", s.ImpurityConcentration, ErrInvalidParameter)
	}

	return nil
}

// Beta returns the thermodynamic β = 1/(k_B·T) in 1/J.
func (s System) Beta() float64 {
	return 1 / (Boltzmann * s.Temperature)
}

// ThermalVoltage returns k_B·T/e in V (≈ 25.7 mV at 298 K).
func (s System) ThermalVoltage() float64 {
	return Boltzmann * s.Temperature / ElementaryCharge
}

// MaxValency returns max(z₊, z₋), the valency used to normalise bulk densities.
func (s System) MaxValency() int {
	if s.CationValency > s.AnionValency {
		return s.CationValency
	}

	return s.AnionValency
}

// Electrolyte precomputes the per-solve ionic model.
// Callers must Validate the System first; Electrolyte does not re-check it.
func (s System) Electrolyte() Electrolyte {
	zMax := float64(s.MaxValency())
	zc, za := float64(s.CationValency), float64(s.AnionValency)
	n0 := MolarToNumberDensity(s.Concentration)
	beta := s.Beta()

	return Electrolyte{
		Beta:      beta,
		EBeta:     ElementaryCharge * beta,
		ZCation:   zc,
		ZAnion:    za,
		NCation:   n0 * zMax / zc,
		NAnion:    n0 * zMax / za,
		NImpurity: MolarToNumberDensity(s.ImpurityConcentration),
	}
}

// DebyeLength returns the screening length κ⁻¹ in m for a uniform relative
// permittivity eps. It returns +Inf for an ion-free system and
// ErrInvalidParameter for eps ≤ 0.
//
//	κ² = e²β·(z₊²n₊ + z₋²n₋ + 2·n_imp) / (ε₀·ε)
func (s System) DebyeLength(eps float64) (float64, error) {
	if !isFinite(eps) || eps <= 0 {
		return 0, fmt.Errorf("dielectric %g: %w", eps, ErrInvalidParameter)
	}
	k2 := s.Electrolyte().KappaSquared(eps)
	if k2 == 0 {
		return math.Inf(1), nil
	}

	return 1 / math.Sqrt(k2), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
