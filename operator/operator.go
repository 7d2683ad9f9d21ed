// SPDX-License-Identifier: MIT

package operator

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

// Stencil holds the three coefficients of node i:
// A·φ_{i−1} + B·φ_i + C·φ_{i+1}, in 1/m² (ε⊥⁻¹ folded in).
type Stencil struct {
	A, B, C float64
}

// Operator is the assembled per-node stencil table.
// Entries at the two boundary nodes are zero; boundaries are handled by sor.
type Operator struct {
	stencils []Stencil
	rhsScale []float64 // 1/(ε₀·ε⊥_i²)
	h        float64   // m
}

// Build assembles the stencils of every interior node of g from p.
//
// With e_i = ε⊥_i⁻¹ and the centered gradient d_i = e_{i+1} − e_{i−1}, the
// coefficients of interior node i are
//
//	A_i = (−e_i − d_i/4)/h²
//	B_i =  2·e_i/h²
//	C_i = (−e_i + d_i/4)/h²
//
// so that A_i + B_i + C_i = 0 and a constant dielectric reduces to the plain
// second difference scaled by e_i.
//
// Preconditions and validation:
//  1. p must cover exactly g.Nodes() nodes (ErrShapeMismatch).
//  2. ε⊥ > 0 at every node; guaranteed by profile.Build.
//
// Steps:
//  1. Convert h to metres once (grid.SpacingSI).
//  2. Precompute the RHS scale e_i²/ε₀ for every node, ends included,
//     since fixed-charge boundaries also read it.
//  3. For i in 1..N−1 compute d_i and (A_i, B_i, C_i).
//
// Returns:
//
//   - op:  immutable stencil table, safe for concurrent readers.
//   - err: ErrShapeMismatch wrapped with both lengths.
//
// Notes:
//   - The table depends on the grid and the dielectric only, never on φ, so
//     one Operator serves every sweep of a solve.
//   - Stencils at nodes 0 and N are left zero; boundary rows belong to sor.
//   - A sharp dielectric jump can make |A_i| + |C_i| exceed B_i next to the
//     jump. Sampled step profiles still converge, but smooth profiles relax
//     faster.
//
// Complexity:
//
//   - Time:  O(N)
//   - Space: O(N)
func Build(g *grid.Grid, p *profile.Profile) (*Operator, error) {
	n := g.Nodes()
	if p.Len() != n {
		return nil, fmt.Errorf("profile %d vs grid %d: %w", p.Len(), n, ErrShapeMismatch)
	}

	h := g.SpacingSI()
	h2 := h * h
	op := &Operator{
		stencils: make([]Stencil, n),
		rhsScale: make([]float64, n),
		h:        h,
	}
	for i := 0; i < n; i++ {
		e := p.InverseDielectric(i)
		op.rhsScale[i] = e * e / physics.VacuumPermittivity
	}
	for i := 1; i < n-1; i++ {
		e := p.InverseDielectric(i)
		d := p.InverseDielectric(i+1) - p.InverseDielectric(i-1)
		op.stencils[i] = Stencil{
			A: (-e - d/4) / h2,
			B: 2 * e / h2,
			C: (-e + d/4) / h2,
		}
	}

	return op, nil
}

// Nodes returns the number of nodes covered.
func (op *Operator) Nodes() int { return len(op.stencils) }

// Spacing returns h in m.
func (op *Operator) Spacing() float64 { return op.h }

// Stencil returns the coefficients of interior node i, or ErrNotInterior.
func (op *Operator) Stencil(i int) (Stencil, error) {
	if i <= 0 || i >= len(op.stencils)-1 {
		return Stencil{}, fmt.Errorf("node %d: %w", i, ErrNotInterior)
	}

	return op.stencils[i], nil
}

// RHSScale returns 1/(ε₀·ε⊥_i²), the factor turning ρ_i (C/m³) into RHS_i.
func (op *Operator) RHSScale(i int) float64 { return op.rhsScale[i] }

// Apply evaluates the discrete left-hand side A·φ_{i−1} + B·φ_i + C·φ_{i+1}
// at interior node i. It does not bounds-check i.
func (op *Operator) Apply(phi []float64, i int) float64 {
	s := op.stencils[i]

	return s.A*phi[i-1] + s.B*phi[i] + s.C*phi[i+1]
}

// SolveLocal returns the φ_i that satisfies the stencil of node i exactly
// for the given neighbours and right-hand side. It does not bounds-check i.
func (op *Operator) SolveLocal(i int, left, right, rhs float64) float64 {
	s := op.stencils[i]

	return (rhs - s.A*left - s.C*right) / s.B
}
