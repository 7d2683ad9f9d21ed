// SPDX-License-Identifier: MIT

package solver

import (
	"errors"

	"github.com/katalvlaran/lvpbe/sor"
)

// Sentinel errors returned by Solve or carried by Result.Err.
var (
	// ErrNilProblem indicates a Problem without grid or profile.
	ErrNilProblem = errors.New("solver: problem has no grid or profile")

	// ErrInvalidInitialGuess indicates a starting φ of the wrong length or with non-finite values.
	ErrInvalidInitialGuess = errors.New("solver: invalid initial guess")

	// ErrDiverged marks a residual that became non-finite or kept growing past the blow-up threshold.
	ErrDiverged = errors.New("solver: iteration diverged")

	// ErrMaxIterationsExceeded marks a soft failure: φ is still a usable best-effort result.
	ErrMaxIterationsExceeded = errors.New("solver: maximum number of iterations exceeded")

	// ErrNumericOverflow is returned when clamping persists across the divergence window.
	ErrNumericOverflow = sor.ErrNumericOverflow
)
