// SPDX-License-Identifier: MIT

package solver

import "fmt"

// Status is the state of the convergence driver.
type Status int

const (
	// Running is the only non-terminal state.
	Running Status = iota
	// Converged means the residual fell to the tolerance.
	Converged
	// Diverged means the divergence policy fired.
	Diverged
	// MaxIterationsExceeded means the sweep budget ran out; φ is best effort.
	MaxIterationsExceeded
	// Canceled means the context ended between two sweeps.
	Canceled
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Diverged:
		return "diverged"
	case MaxIterationsExceeded:
		return "max-iterations-exceeded"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether s ends a solve.
func (s Status) Terminal() bool { return s != Running }
