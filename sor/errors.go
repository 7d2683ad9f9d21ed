// SPDX-License-Identifier: MIT

package sor

import "errors"

var (
	// ErrLengthMismatch indicates φ, the operator and the profile disagree on node count.
	ErrLengthMismatch = errors.New("sor: potential length does not match node count")

	// ErrInvalidOmega indicates a relaxation factor outside the open interval (0, 2).
	ErrInvalidOmega = errors.New("sor: relaxation factor must lie in (0, 2)")

	// ErrInvalidBoundary indicates a non-finite or unknown boundary condition.
	ErrInvalidBoundary = errors.New("sor: invalid boundary condition")

	// ErrInvalidConfig indicates a non-positive exponent limit or an unknown ordering.
	ErrInvalidConfig = errors.New("sor: invalid iterator configuration")

	// ErrNumericOverflow marks exponential blow-up that clamping could not contain.
	// The sweep itself never returns it; the convergence driver does.
	ErrNumericOverflow = errors.New("sor: numeric overflow in Boltzmann factor")
)
