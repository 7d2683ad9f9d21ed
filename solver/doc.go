// SPDX-License-Identifier: MIT

// Package solver drives SOR sweeps to self-consistency and reports a
// SolveResult-style terminal state.
//
// State machine:
//
//	Running ──residual ≤ tol──────────────────────▶ Converged
//	Running ──non-finite residual / blow-up streak─▶ Diverged
//	Running ──clamping in every sweep of a window──▶ Diverged (ErrNumericOverflow)
//	Running ──iterations == MaxIterations──────────▶ MaxIterationsExceeded
//	Running ──ctx done (checked between sweeps)────▶ Canceled
//
// Divergence policy:
//   - A NaN or ±Inf residual diverges immediately.
//   - A residual that grew in more than DivergenceWindow consecutive sweeps
//     while exceeding BlowUpRatio × (best residual so far) diverges.
//   - Clamped Boltzmann exponents in DivergenceWindow consecutive sweeps
//     diverge with ErrNumericOverflow.
//
// Adaptive relaxation (disabled by default):
//
//	With WithAdaptiveRelaxation(factor, floor, retries) a would-be
//	divergence instead multiplies ω by factor, restores the φ with the
//	best residual seen so far and keeps iterating. Once ω would drop
//	below floor or retries are spent, the divergence is final.
//
// Errors:
//
//	Solve returns a non-nil error only for invalid input (nil problem,
//	bad initial guess, invalid boundary or ω) and for cancellation.
//	Iteration-time failures come back inside *Result: Status plus Err().
//
// Example:
//
//	res, err := solver.Solve(ctx, prob, solver.LinearGuess(prob),
//	    solver.WithOmega(1.5),
//	    solver.WithTolerance(1e-8),
//	)
//	if err != nil {
//	    return err
//	}
//	if !res.Converged() {
//	    log.Printf("best effort after %d sweeps: %v", res.Iterations, res.Err())
//	}
package solver
