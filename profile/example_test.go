// SPDX-License-Identifier: MIT

package profile_test

import (
	"fmt"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

// ExampleBuild evaluates a low-dielectric interfacial layer next to a wall.
func ExampleBuild() {
	g, _ := grid.New(1, 4)
	p, err := profile.Build(g, physics.DefaultSystem(), profile.Inputs{
		Dielectric: profile.Step{Position: 0.5, Left: 10, Right: 80},
		PMFCation:  profile.Constant(1),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.DielectricProfile())
	c, _ := p.PMF(0)
	fmt.Println("cation PMF:", c, "kT")

	// Output:
	// [10 10 80 80 80]
	// cation PMF: 1 kT
}
