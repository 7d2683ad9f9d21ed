// SPDX-License-Identifier: MIT

// Package operator builds the finite-difference coefficients of the
// generalised Poisson operator with a position-dependent dielectric.
//
// Equation:
//
//	Gauss's law ε₀·d/dz[ε⊥ dφ/dz] = −ρ, divided by ε₀·ε⊥², reads in terms of
//	the inverse dielectric e(z) = ε⊥⁻¹:
//
//	  −e·φ'' + e'·φ' = ρ·e²/ε₀
//
//	so the dielectric gradient enters explicitly through e' = d(ε⊥⁻¹)/dz.
//
// Discretisation (centered differences, node i, spacing h):
//
//	d_i = e_{i+1} − e_{i−1}
//	a_i = −e_i/h² − d_i/(4h²)
//	b_i =  2e_i/h²
//	c_i = −e_i/h² + d_i/(4h²)
//
//	a_i·φ_{i−1} + b_i·φ_i + c_i·φ_{i+1} = RHS_i,  RHS_i = ρ_i/(ε₀·ε⊥_i²)
//
// The coefficients depend only on the grid and the profile; they are built
// once per solve and reused by every sweep.
//
// Errors:
//
//   - ErrShapeMismatch: the profile was built on a grid with a different node count.
package operator
