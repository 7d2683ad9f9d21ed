// SPDX-License-Identifier: MIT

// Package profile evaluates the position-dependent material parameters of a
// Poisson–Boltzmann problem at every grid node.
//
// What:
//
//   - Function: the "evaluate at z → value" capability every profile source
//     implements. Concrete variants: Constant, Step, Tabulated (piecewise
//     linear, backed by gonum/interp), Func (plain closure) and Inverse
//     (adapts a 1/ε⊥ description).
//   - Inputs: the user-supplied functions for ε⊥(z), ρ_ex(z), V₊(z), V₋(z)
//     and the optional impurity PMFs.
//   - Profile: per-node arrays aligned index-for-index with a grid.Grid,
//     together with the physics.Electrolyte of the solve. Read-only after Build.
//
// Units:
//
//   - z in nm; ε⊥ relative (dimensionless); ρ_ex supplied in e/nm³ and
//     stored in C/m³; PMFs in units of k_B·T.
//
// Errors:
//
//   - ErrInvalidParameter: ε⊥ ≤ 0 or any non-finite value at some node,
//     a missing dielectric function, or an invalid physics.System.
package profile
