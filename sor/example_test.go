// SPDX-License-Identifier: MIT

package sor_test

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/operator"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
	"github.com/katalvlaran/lvpbe/sor"
)

// ExampleIterator_Sweep relaxes a salt-free gap between two electrodes
// until the potential is the straight line between them.
func ExampleIterator_Sweep() {
	sys := physics.DefaultSystem()
	sys.Concentration = 0

	g, _ := grid.New(1, 4)
	p, _ := profile.Build(g, sys, profile.Inputs{Dielectric: profile.Constant(80)})
	op, _ := operator.Build(g, p)

	cfg := sor.DefaultConfig()
	cfg.Omega = 1.2
	it, _ := sor.New(op, p, sor.Potential(0.1), sor.Potential(0), cfg)

	phi := make([]float64, g.Nodes())
	it.ApplyBoundaries(phi)
	for {
		st, _ := it.Sweep(phi)
		if st.Residual < 1e-12 {
			break
		}
	}
	for i, v := range phi {
		fmt.Printf("z=%.2f nm  phi=%.4f V\n", g.At(i), v)
	}
	// Output:
	// z=0.00 nm  phi=0.1000 V
	// z=0.25 nm  phi=0.0750 V
	// z=0.50 nm  phi=0.0500 V
	// z=0.75 nm  phi=0.0250 V
	// z=1.00 nm  phi=0.0000 V
}
