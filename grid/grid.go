// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpbe/physics"
)

// MinIntervals is the smallest interval count that leaves an interior node.
const MinIntervals = 2

// Grid is the uniform 1-D discretisation of [0, Length].
// Nodes are indexed 0 … Intervals; node 0 and node Intervals are boundary nodes.
type Grid struct {
	length    float64
	intervals int
	spacing   float64
	z         []float64
}

// New builds a grid of `intervals` equal cells over [0, length] (length in nm).
// Returns ErrInvalidGrid if intervals < MinIntervals or length is not a
// positive finite number.
// Complexity: O(N) time and memory.
func New(length float64, intervals int) (*Grid, error) {
	if intervals < MinIntervals || math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return nil, fmt.Errorf("length=%g intervals=%d: %w", length, intervals, ErrInvalidGrid)
	}
	z := floats.Span(make([]float64, intervals+1), 0, length)
	z[intervals] = length // pin the far end against rounding in step*N

	return &Grid{
		length:    length,
		intervals: intervals,
		spacing:   length / float64(intervals),
		z:         z,
	}, nil
}

// Length returns L in nm.
func (g *Grid) Length() float64 { return g.length }

// Intervals returns N.
func (g *Grid) Intervals() int { return g.intervals }

// Nodes returns N+1, the length of every per-node array aligned with g.
func (g *Grid) Nodes() int { return g.intervals + 1 }

// Spacing returns h in nm.
func (g *Grid) Spacing() float64 { return g.spacing }

// SpacingSI returns h in m.
func (g *Grid) SpacingSI() float64 { return g.spacing * physics.Nanometer }

// At returns z_i in nm. It panics if i is out of range, like a slice index.
func (g *Grid) At(i int) float64 { return g.z[i] }

// InBounds reports whether i is a valid node index.
func (g *Grid) InBounds(i int) bool { return i >= 0 && i <= g.intervals }

// IsInterior reports whether i is an interior (non-boundary) node.
func (g *Grid) IsInterior(i int) bool { return i > 0 && i < g.intervals }

// Midpoint returns L/2 in nm.
func (g *Grid) Midpoint() float64 { return g.length / 2 }

// Coordinates returns a copy of the node coordinates in nm.
func (g *Grid) Coordinates() []float64 {
	out := make([]float64, len(g.z))
	copy(out, g.z)

	return out
}

// CoordinatesSI returns the node coordinates in m.
func (g *Grid) CoordinatesSI() []float64 {
	return floats.ScaleTo(make([]float64, len(g.z)), physics.Nanometer, g.z)
}
