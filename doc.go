// SPDX-License-Identifier: MIT

// Package lvpbe solves the one-dimensional modified Poisson–Boltzmann
// equation for an electrolyte confined between two planar walls.
//
// 🚀 What is lvpbe?
//
//	A small numeric toolkit that brings together:
//		• Physics: thermal scales, Debye length, ion number densities
//		• Grids: uniform node sets on [0, L] in nanometres
//		• Profiles: position-dependent dielectric, fixed charge and PMFs
//		• Operators: the three-point variable-coefficient Gauss-law stencil
//		• SOR: sequential or red-black over-relaxation sweeps
//		• Solver: convergence monitoring, divergence detection, adaptive ω
//		• Analysis: densities, integrated charge, mirrored profiles
//
// Everything is organized in flat subpackages:
//
//	physics/   — physical constants, unit conversion, electrolyte parameters
//	grid/      — the uniform 1-D mesh
//	profile/   — spatially varying inputs sampled onto the mesh
//	operator/  — discretized Gauss law with inverse dielectric e = 1/ε
//	sor/       — one-sweep iterator and boundary conditions
//	solver/    — Solve, options, initial guesses, Result and Status
//	analysis/  — post-processing of converged potentials
//	dataio/    — plain-text column input and output
//	archive/   — SQLite store of finished runs
//	cmd/pbesolve — command-line front end
//
// Quick example (symmetric screening between two 100 mV walls):
//
//	g, _ := grid.New(10, 100)
//	p, _ := solver.NewProblem(g, physics.DefaultSystem(), profile.Inputs{},
//		sor.Potential(0.1), sor.Potential(0.1))
//	res, err := solver.Solve(ctx, p, solver.LinearGuess(p))
//
// Potentials are in volts, lengths in nanometres at the API surface and
// in metres inside the operator.
//
//	go get github.com/katalvlaran/lvpbe/solver
package lvpbe
