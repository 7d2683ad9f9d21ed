// SPDX-License-Identifier: MIT

// Package analysis derives physical profiles from a converged potential:
// ion and impurity densities in nm⁻³, the net charge density, the charge
// per wall area held by the solution, and helpers to present a half-space
// solution over the full gap.
//
// All functions are pure: they read φ and the parameter profile and
// return fresh slices. Densities use the unclamped Boltzmann factors, so
// they are meaningful only for converged (or at least finite) potentials.
package analysis
