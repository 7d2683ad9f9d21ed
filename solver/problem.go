// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
	"github.com/katalvlaran/lvpbe/sor"
)

// Problem is everything a solve needs besides the driver controls.
// Grid and Profile must describe the same nodes.
type Problem struct {
	Grid    *grid.Grid
	Profile *profile.Profile
	Left    sor.BoundaryCondition
	Right   sor.BoundaryCondition
}

// NewProblem builds the parameter profile for g and bundles it with the
// boundary conditions. Construction errors are fatal: nothing is iterated.
func NewProblem(g *grid.Grid, sys physics.System, in profile.Inputs, left, right sor.BoundaryCondition) (*Problem, error) {
	if g == nil {
		return nil, ErrNilProblem
	}
	p, err := profile.Build(g, sys, in)
	if err != nil {
		return nil, err
	}
	if err = left.Validate(); err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	if err = right.Validate(); err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}

	return &Problem{Grid: g, Profile: p, Left: left, Right: right}, nil
}

func (p *Problem) check() error {
	if p == nil || p.Grid == nil || p.Profile == nil {
		return ErrNilProblem
	}
	if p.Grid.Nodes() != p.Profile.Len() {
		return fmt.Errorf("grid %d vs profile %d nodes: %w", p.Grid.Nodes(), p.Profile.Len(), sor.ErrLengthMismatch)
	}
	if err := p.Left.Validate(); err != nil {
		return fmt.Errorf("left: %w", err)
	}
	if err := p.Right.Validate(); err != nil {
		return fmt.Errorf("right: %w", err)
	}

	return nil
}
