// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
)

// Inputs collects the profile functions of a solve. Only Dielectric is
// required; a nil function means "zero everywhere".
//
//   - Dielectric        — ε⊥(z), relative permittivity, must be > 0.
//   - FixedCharge       — ρ_ex(z) in e/nm³.
//   - PMFCation/Anion   — V±(z) in k_B·T.
//   - PMFImpurityCation/Anion — PMFs of the monovalent impurity pair in k_B·T.
type Inputs struct {
	Dielectric        Function
	FixedCharge       Function
	PMFCation         Function
	PMFAnion          Function
	PMFImpurityCation Function
	PMFImpurityAnion  Function
}

// Profile is the per-node parameter table of one solve. Every array has
// Nodes() entries aligned with the grid it was built on.
type Profile struct {
	electrolyte physics.Electrolyte
	system      physics.System

	eps, invEps []float64
	rhoEx       []float64 // C/m³
	pmfCat      []float64
	pmfAn       []float64
	pmfImpCat   []float64
	pmfImpAn    []float64
}

// Build evaluates every input function at each node of g.
//
// Steps:
//  1. Validate sys (ErrInvalidParameter).
//  2. Evaluate ε⊥ and reject ε⊥ ≤ 0 or non-finite values.
//  3. Evaluate ρ_ex (converted to C/m³) and the PMFs; reject non-finite values.
//
// Node order is irrelevant: there is no cross-node dependency.
// Complexity: O(N) evaluations, O(N) memory.
func Build(g *grid.Grid, sys physics.System, in Inputs) (*Profile, error) {
	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if in.Dielectric == nil {
		return nil, fmt.Errorf("profile: dielectric function is required: %w", ErrInvalidParameter)
	}

	n := g.Nodes()
	p := &Profile{
		electrolyte: sys.Electrolyte(),
		system:      sys,
		eps:         make([]float64, n),
		invEps:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		e := in.Dielectric.At(g.At(i))
		if !finite(e) || e <= 0 {
			return nil, fmt.Errorf("profile: dielectric %g at z=%g nm (node %d): %w", e, g.At(i), i, ErrInvalidParameter)
		}
		p.eps[i] = e
		p.invEps[i] = 1 / e
	}

	var err error
	if p.rhoEx, err = sample(g, in.FixedCharge, "fixed charge", physics.ChargeDensitySI(1)); err != nil {
		return nil, err
	}
	if p.pmfCat, err = sample(g, in.PMFCation, "cation PMF", 1); err != nil {
		return nil, err
	}
	if p.pmfAn, err = sample(g, in.PMFAnion, "anion PMF", 1); err != nil {
		return nil, err
	}
	if p.pmfImpCat, err = sample(g, in.PMFImpurityCation, "impurity cation PMF", 1); err != nil {
		return nil, err
	}
	if p.pmfImpAn, err = sample(g, in.PMFImpurityAnion, "impurity anion PMF", 1); err != nil {
		return nil, err
	}

	return p, nil
}

// sample evaluates fn·scale at every node; nil fn yields zeros.
func sample(g *grid.Grid, fn Function, what string, scale float64) ([]float64, error) {
	out := make([]float64, g.Nodes())
	if fn == nil {
		return out, nil
	}
	for i := range out {
		v := fn.At(g.At(i))
		if !finite(v) {
			return nil, fmt.Errorf("profile: %s %g at node %d: %w", what, v, i, ErrInvalidParameter)
		}
		out[i] = v * scale
	}

	return out, nil
}

// Len returns the number of nodes covered by the profile.
func (p *Profile) Len() int { return len(p.eps) }

// Electrolyte returns the ionic model of the solve.
func (p *Profile) Electrolyte() physics.Electrolyte { return p.electrolyte }

// System returns the physical constants bundle the profile was built from.
func (p *Profile) System() physics.System { return p.system }

// Dielectric returns ε⊥ at node i.
func (p *Profile) Dielectric(i int) float64 { return p.eps[i] }

// InverseDielectric returns 1/ε⊥ at node i.
func (p *Profile) InverseDielectric(i int) float64 { return p.invEps[i] }

// FixedCharge returns ρ_ex at node i in C/m³.
func (p *Profile) FixedCharge(i int) float64 { return p.rhoEx[i] }

// PMF returns (V₊, V₋) at node i in k_B·T.
func (p *Profile) PMF(i int) (cation, anion float64) { return p.pmfCat[i], p.pmfAn[i] }

// ImpurityPMF returns the impurity (V₊, V₋) at node i in k_B·T.
func (p *Profile) ImpurityPMF(i int) (cation, anion float64) { return p.pmfImpCat[i], p.pmfImpAn[i] }

// DielectricProfile returns a copy of ε⊥ at every node.
func (p *Profile) DielectricProfile() []float64 { return clone(p.eps) }

// MeanDielectric returns the harmonic mean of ε⊥ over the nodes, i.e. the
// inverse of the averaged inverse dielectric used for Gouy–Chapman estimates.
func (p *Profile) MeanDielectric() float64 {
	var s float64
	for _, v := range p.invEps {
		s += v
	}

	return float64(len(p.invEps)) / s
}

func clone(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
