// SPDX-License-Identifier: MIT

// Package sor implements one successive-over-relaxation sweep of the
// nonlinear, modified Poisson–Boltzmann equation.
//
// Per interior node i (sequential Gauss–Seidel order by default):
//
//  1. ρ_i = ρ_ex,i + e·(z₊n₊·exp(−z₊eβφ_i − βV₊) − z₋n₋·exp(z₋eβφ_i − βV₋))
//     [+ e·n_imp·(exp(−eβφ_i − βV_imp+) − exp(eβφ_i − βV_imp−))]
//  2. RHS_i = ρ_i / (ε₀·ε⊥_i²)
//  3. φ_raw solves a_i·φ_{i−1} + b_i·φ_raw + c_i·φ_{i+1} = RHS_i, reading
//     neighbours already updated in this sweep.
//  4. φ_i ← φ_i + ω·(φ_raw − φ_i), 0 < ω < 2.
//
// After the interior pass both BoundaryConditions are re-applied. The sweep
// reports the residual max_i |φ_i^new − φ_i^old| over interior nodes.
//
// Overflow policy:
//
//	Every Boltzmann exponent above +ExponentLimit is clamped to it and
//	counted in Stats.Clamped. Exponents below −ExponentLimit are left to
//	underflow gracefully. The driver decides when persistent clamping
//	becomes a failure (ErrNumericOverflow).
//
// Node ordering:
//
//	Sequential visits i = 1 … N−1 in ascending order. RedBlack first
//	updates all odd (red) nodes from even neighbours, then all even (black)
//	nodes from odd ones. Both halves may be split across Workers goroutines;
//	a barrier separates the halves. RedBlack shares the fixed point of
//	Sequential but not its iterates, and results do not depend on Workers.
//
// Concurrency:
//
//	An Iterator is not safe for concurrent Sweep calls; the caller owns φ
//	exclusively for the duration of a sweep.
package sor
