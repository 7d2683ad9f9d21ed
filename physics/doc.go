// SPDX-License-Identifier: MIT

// Package physics holds the physical-constants bundle consumed by every
// stage of a Poisson–Boltzmann solve.
//
// What:
//
//   - CODATA constants (elementary charge, vacuum permittivity, Boltzmann,
//     Avogadro) in SI units.
//   - System: temperature, bulk salt concentration, cation/anion valencies
//     and an optional monovalent impurity electrolyte.
//   - Electrolyte: the precomputed per-solve view of a System (β, e·β,
//     bulk number densities) that the SOR sweep evaluates at every node.
//   - Unit helpers between the lab units used at the edges (nm, mol/l,
//     e/nm², e/nm³, mV) and SI used inside the numeric core.
//
// Valency normalisation:
//
//	With z_max = max(z₊, z₋) the bulk number densities are
//	  n₊ = c₀·z_max/z₊,  n₋ = c₀·z_max/z₋
//	so that z₊n₊ = z₋n₋ (bulk electroneutrality). For a 1:1 salt both equal c₀.
//
// Errors:
//
//   - ErrInvalidParameter: non-physical input (T ≤ 0, c₀ < 0, valency < 1, NaN/Inf).
package physics
