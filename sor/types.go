// SPDX-License-Identifier: MIT

package sor

import (
	"fmt"
	"math"
)

// Ordering selects the node visiting order of a sweep.
type Ordering int

const (
	// Sequential is ascending Gauss–Seidel order (the reference update rule).
	Sequential Ordering = iota
	// RedBlack updates odd nodes, then even nodes; each half may run in parallel.
	RedBlack
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Sequential:
		return "sequential"
	case RedBlack:
		return "red-black"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering maps "sequential"/"seq" and "red-black"/"redblack"/"rb".
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "sequential", "seq", "gauss-seidel":
		return Sequential, nil
	case "red-black", "redblack", "rb":
		return RedBlack, nil
	}

	return 0, fmt.Errorf("ordering %q: %w", s, ErrInvalidConfig)
}

// BoundaryKind distinguishes Dirichlet from surface-charge (Neumann) ends.
type BoundaryKind int

const (
	// FixedPotential pins φ at the end node (V).
	FixedPotential BoundaryKind = iota
	// FixedCharge prescribes the wall surface charge σ (C/m²), i.e. the field
	// ε₀ε⊥·dφ/dn = −σ along the outward normal. σ = 0 is a symmetry plane.
	FixedCharge
)

// BoundaryCondition is the condition at one end of the domain.
type BoundaryCondition struct {
	Kind  BoundaryKind
	Value float64 // V for FixedPotential, C/m² for FixedCharge
}

// Potential returns a fixed-potential condition φ = v (V).
func Potential(v float64) BoundaryCondition {
	return BoundaryCondition{Kind: FixedPotential, Value: v}
}

// SurfaceCharge returns a fixed-charge condition with σ in C/m².
func SurfaceCharge(sigma float64) BoundaryCondition {
	return BoundaryCondition{Kind: FixedCharge, Value: sigma}
}

// Symmetry returns the zero-field condition used at a midplane.
func Symmetry() BoundaryCondition {
	return SurfaceCharge(0)
}

// Validate reports ErrInvalidBoundary for unknown kinds or non-finite values.
func (bc BoundaryCondition) Validate() error {
	if bc.Kind != FixedPotential && bc.Kind != FixedCharge {
		return fmt.Errorf("kind %d: %w", bc.Kind, ErrInvalidBoundary)
	}
	if math.IsNaN(bc.Value) || math.IsInf(bc.Value, 0) {
		return fmt.Errorf("value %g: %w", bc.Value, ErrInvalidBoundary)
	}

	return nil
}

// String renders the condition for logs.
func (bc BoundaryCondition) String() string {
	if bc.Kind == FixedCharge {
		return fmt.Sprintf("sigma=%g C/m^2", bc.Value)
	}

	return fmt.Sprintf("phi=%g V", bc.Value)
}

// DefaultExponentLimit caps Boltzmann exponents; exp(100) ≈ 2.7e43 is
// far from float64 overflow yet never reached by a physical solve
// (|eβφ| = 100 is φ ≈ 2.6 V at room temperature).
const DefaultExponentLimit = 100.0

// Config tunes an Iterator.
//   - Omega         — relaxation factor, 0 < ω < 2.
//   - Ordering      — Sequential or RedBlack.
//   - Workers       — goroutines per red-black half pass (≤ 1 means inline).
//   - ExponentLimit — clamp for Boltzmann exponents (> 0).
type Config struct {
	Omega         float64
	Ordering      Ordering
	Workers       int
	ExponentLimit float64
}

// DefaultConfig returns plain sequential Gauss–Seidel (ω = 1).
func DefaultConfig() Config {
	return Config{
		Omega:         1,
		Ordering:      Sequential,
		Workers:       1,
		ExponentLimit: DefaultExponentLimit,
	}
}

// Stats summarises one sweep.
//   - Residual — max |Δφ| over interior nodes (V); NaN/Inf propagate.
//   - Clamped  — number of Boltzmann exponents clamped, boundaries included.
type Stats struct {
	Residual float64
	Clamped  int
}

func validOmega(w float64) bool { return w > 0 && w < 2 }
