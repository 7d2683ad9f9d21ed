// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/sor"
)

// ZeroGuess returns φ = 0 with fixed-potential ends already in place.
func ZeroGuess(p *Problem) []float64 {
	phi := make([]float64, p.Grid.Nodes())
	pin(phi, p)

	return phi
}

// LinearGuess interpolates linearly between two fixed-potential ends.
// With one fixed end the guess is that constant; with none it is zero.
func LinearGuess(p *Problem) []float64 {
	phi := make([]float64, p.Grid.Nodes())
	l, r := p.Left, p.Right
	switch {
	case l.Kind == sor.FixedPotential && r.Kind == sor.FixedPotential:
		length := p.Grid.Length()
		for i := range phi {
			t := p.Grid.At(i) / length
			phi[i] = l.Value + t*(r.Value-l.Value)
		}
	case l.Kind == sor.FixedPotential:
		fill(phi, l.Value)
	case r.Kind == sor.FixedPotential:
		fill(phi, r.Value)
	}
	pin(phi, p)

	return phi
}

// GouyChapmanGuess superposes the screened decay of both walls:
//
//	charged wall:   σ/(ε₀·ε̄·κ)·exp(−κ·d)
//	potential wall: φ_wall·exp(−κ·d)
//
// where d is the distance from the wall and ε̄ the harmonic mean of ε⊥.
// An ion-free system has no screening length; LinearGuess is used instead.
func GouyChapmanGuess(p *Problem) []float64 {
	eps := p.Profile.MeanDielectric()
	debye, err := p.Profile.System().DebyeLength(eps)
	if err != nil || math.IsInf(debye, 1) {
		return LinearGuess(p)
	}
	kappa := 1 / debye

	phi := make([]float64, p.Grid.Nodes())
	length := p.Grid.Length()
	for i := range phi {
		z := p.Grid.At(i) * physics.Nanometer
		phi[i] = wallAmplitude(p.Left, eps, kappa)*math.Exp(-kappa*z) +
			wallAmplitude(p.Right, eps, kappa)*math.Exp(-kappa*(length*physics.Nanometer-z))
	}
	pin(phi, p)

	return phi
}

func wallAmplitude(bc sor.BoundaryCondition, eps, kappa float64) float64 {
	if bc.Kind == sor.FixedCharge {
		return bc.Value / (physics.VacuumPermittivity * eps * kappa)
	}

	return bc.Value
}

// pin writes fixed-potential values into the end nodes.
func pin(phi []float64, p *Problem) {
	if p.Left.Kind == sor.FixedPotential {
		phi[0] = p.Left.Value
	}
	if p.Right.Kind == sor.FixedPotential {
		phi[len(phi)-1] = p.Right.Value
	}
}

func fill(phi []float64, v float64) {
	for i := range phi {
		phi[i] = v
	}
}
