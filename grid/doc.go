// SPDX-License-Identifier: MIT

// Package grid owns the discretised z-axis of a one-dimensional
// Poisson–Boltzmann problem.
//
// What:
//
//   - Grid holds N+1 evenly spaced node coordinates z₀ … z_N on [0, L]
//     with spacing h = L/N. Lengths are in nanometres.
//   - A Grid is immutable once built; Coordinates returns a copy.
//
// Invariants:
//
//   - h > 0 and N ≥ 2 (at least one interior node).
//
// Errors:
//
//   - ErrInvalidGrid: L ≤ 0, L non-finite, or N < 2.
package grid
