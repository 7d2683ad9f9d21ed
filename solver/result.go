// SPDX-License-Identifier: MIT

package solver

// Result is the terminal state of a solve. It is immutable once returned
// and owns Potential.
//
//   - Potential  — φ at every node (V); best effort unless Converged.
//   - Status     — terminal state of the driver.
//   - Iterations — sweeps performed, retries included.
//   - Residual   — max|Δφ| of the last sweep (V).
//   - History    — residual per sweep, only with WithHistory.
//   - Omega      — relaxation factor in use at termination.
//   - Retries    — adaptive ω reductions performed.
//   - Clamped    — total clamped Boltzmann exponents.
type Result struct {
	Potential  []float64
	Status     Status
	Iterations int
	Residual   float64
	History    []float64
	Omega      float64
	Retries    int
	Clamped    int

	err error
}

// Converged reports Status == Converged.
func (r *Result) Converged() bool { return r.Status == Converged }

// Err returns the failure behind a non-converged status, or nil.
// It matches ErrDiverged, ErrNumericOverflow, ErrMaxIterationsExceeded or
// the context error under errors.Is.
func (r *Result) Err() error { return r.err }
