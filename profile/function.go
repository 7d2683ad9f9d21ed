// SPDX-License-Identifier: MIT

package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/lvpbe/grid"
)

// Function is a scalar profile over the z-axis (z in nm).
type Function interface {
	At(z float64) float64
}

// Constant is a uniform profile.
type Constant float64

// At returns c for every z.
func (c Constant) At(float64) float64 { return float64(c) }

// Step switches from Left to Right at Position: Left for z < Position,
// Right for z ≥ Position.
type Step struct {
	Position    float64
	Left, Right float64
}

// At evaluates the step.
func (s Step) At(z float64) float64 {
	if z < s.Position {
		return s.Left
	}

	return s.Right
}

// Func adapts an ordinary function.
type Func func(z float64) float64

// At calls f(z).
func (f Func) At(z float64) float64 { return f(z) }

// Inverse evaluates 1/Of(z). It lets an inverse-dielectric table (the
// natural output of dielectric-profile simulations) drive the dielectric input.
type Inverse struct {
	Of Function
}

// At returns 1/Of.At(z); a zero inverse yields +Inf, which Build rejects.
func (inv Inverse) At(z float64) float64 { return 1 / inv.Of.At(z) }

// Tabulated linearly interpolates sampled (z, value) pairs. Outside the
// sampled range the nearest end value is held.
type Tabulated struct {
	pl interp.PiecewiseLinear
}

// NewTabulated fits a piecewise-linear profile through (zs[i], vs[i]).
// zs must be strictly increasing, both slices finite and of equal length ≥ 2.
// Returns ErrInvalidParameter otherwise (interp.PiecewiseLinear would panic).
func NewTabulated(zs, vs []float64) (*Tabulated, error) {
	if len(zs) != len(vs) {
		return nil, fmt.Errorf("tabulated: %d coordinates vs %d values: %w", len(zs), len(vs), ErrInvalidParameter)
	}
	if len(zs) < 2 {
		return nil, fmt.Errorf("tabulated: need at least 2 samples, got %d: %w", len(zs), ErrInvalidParameter)
	}
	for i := range zs {
		if !finite(zs[i]) || !finite(vs[i]) {
			return nil, fmt.Errorf("tabulated: non-finite sample %d: %w", i, ErrInvalidParameter)
		}
		if i > 0 && zs[i] <= zs[i-1] {
			return nil, fmt.Errorf("tabulated: coordinates not strictly increasing at %d: %w", i, ErrInvalidParameter)
		}
	}
	t := &Tabulated{}
	if err := t.pl.Fit(zs, vs); err != nil {
		return nil, fmt.Errorf("tabulated: %w", err)
	}

	return t, nil
}

// NewNodal wraps one value per grid node (e.g. a profile file whose length
// matches the discretisation) as a Tabulated function over g's coordinates.
func NewNodal(g *grid.Grid, values []float64) (*Tabulated, error) {
	if len(values) != g.Nodes() {
		return nil, fmt.Errorf("nodal: %d values for %d nodes: %w", len(values), g.Nodes(), ErrInvalidParameter)
	}

	return NewTabulated(g.Coordinates(), values)
}

// At interpolates the table at z, clamping to the end values outside the range.
func (t *Tabulated) At(z float64) float64 {
	return t.pl.Predict(z)
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
