// SPDX-License-Identifier: MIT

package sor

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvpbe/operator"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
)

// Iterator performs SOR sweeps for one fixed problem. It holds no φ; the
// caller passes its exclusively owned buffer into every Sweep.
type Iterator struct {
	op          *operator.Operator
	prof        *profile.Profile
	el          physics.Electrolyte
	left, right BoundaryCondition

	omega    float64
	ordering Ordering
	workers  int
	limit    float64

	partial []Stats // per-worker scratch for red-black passes
}

// New validates the configuration and binds an Iterator to op and prof.
// Returns ErrLengthMismatch, ErrInvalidOmega, ErrInvalidBoundary or ErrInvalidConfig.
func New(op *operator.Operator, prof *profile.Profile, left, right BoundaryCondition, cfg Config) (*Iterator, error) {
	if op.Nodes() != prof.Len() {
		return nil, fmt.Errorf("operator %d vs profile %d: %w", op.Nodes(), prof.Len(), ErrLengthMismatch)
	}
	if !validOmega(cfg.Omega) {
		return nil, fmt.Errorf("omega %g: %w", cfg.Omega, ErrInvalidOmega)
	}
	if err := left.Validate(); err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	if err := right.Validate(); err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	if !(cfg.ExponentLimit > 0) || math.IsInf(cfg.ExponentLimit, 1) {
		return nil, fmt.Errorf("exponent limit %g: %w", cfg.ExponentLimit, ErrInvalidConfig)
	}
	if cfg.Ordering != Sequential && cfg.Ordering != RedBlack {
		return nil, fmt.Errorf("%v: %w", cfg.Ordering, ErrInvalidConfig)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	return &Iterator{
		op:       op,
		prof:     prof,
		el:       prof.Electrolyte(),
		left:     left,
		right:    right,
		omega:    cfg.Omega,
		ordering: cfg.Ordering,
		workers:  workers,
		limit:    cfg.ExponentLimit,
		partial:  make([]Stats, workers),
	}, nil
}

// Omega returns the current relaxation factor.
func (it *Iterator) Omega() float64 { return it.omega }

// SetOmega changes ω between sweeps (adaptive damping). Returns ErrInvalidOmega.
func (it *Iterator) SetOmega(w float64) error {
	if !validOmega(w) {
		return fmt.Errorf("omega %g: %w", w, ErrInvalidOmega)
	}
	it.omega = w

	return nil
}

// Ordering returns the configured node ordering.
func (it *Iterator) Ordering() Ordering { return it.ordering }

// Boundaries returns the (left, right) conditions.
func (it *Iterator) Boundaries() (left, right BoundaryCondition) { return it.left, it.right }

// Sweep relaxes every interior node of phi once, in place, then re-applies
// both boundary conditions.
//
// Per interior node i, in the configured order:
//  1. ρ_i = ChargeDensity(i, φ_i) from the current value, exponents clamped.
//  2. RHS_i = ρ_i·ε⊥_i⁻²/ε₀.
//  3. φ_raw solves A_i·φ_{i−1} + B_i·φ_raw + C_i·φ_{i+1} = RHS_i with the
//     neighbours as they stand at that moment.
//  4. φ_i ← φ_i + ω·(φ_raw − φ_i).
//
// Orderings:
//
//   - Sequential: ascending i, Gauss–Seidel style; each node sees the new
//     value of its left neighbour and the old value of its right one.
//   - RedBlack: odd nodes first, then even nodes. Within a colour no node
//     reads another of the same colour, so the colour is split into
//     contiguous chunks over Config.Workers goroutines with a barrier in
//     between. The result is bit-identical for any worker count.
//
// Returns:
//
//   - Stats.Residual: max|Δφ_i| over interior nodes, NaN if any Δφ_i is NaN.
//   - Stats.Clamped:  clamped exponents, boundary evaluations included.
//   - err: ErrLengthMismatch only. Numeric trouble never becomes an error
//     here; the caller decides from Stats.
//
// Notes:
//   - A zero start with non-zero fixed potentials reports residual 0 on the
//     first sweep unless ApplyBoundaries ran before it.
//   - Sweep is not safe for concurrent use on the same Iterator.
//
// Complexity:
//
//   - Time:  O(N) per sweep, split across workers for RedBlack.
//   - Space: O(1) extra, O(Workers) for RedBlack partial stats.
func (it *Iterator) Sweep(phi []float64) (Stats, error) {
	if len(phi) != it.op.Nodes() {
		return Stats{}, fmt.Errorf("len(phi)=%d, nodes=%d: %w", len(phi), it.op.Nodes(), ErrLengthMismatch)
	}

	var st Stats
	if it.ordering == RedBlack {
		st = it.halfPass(phi, 1)
		black := it.halfPass(phi, 0)
		st.merge(black)
	} else {
		st = it.span(phi, 1, len(phi)-1, 1)
	}
	st.Clamped += it.ApplyBoundaries(phi)

	return st, nil
}

// span relaxes nodes from, from+step, … < to in order.
func (it *Iterator) span(phi []float64, from, to, step int) Stats {
	var st Stats
	for i := from; i < to; i += step {
		d, c := it.relax(phi, i)
		st.Clamped += c
		st.observe(d)
	}

	return st
}

// halfPass updates every interior node with i%2 == parity. Nodes of one
// parity only read nodes of the other, so chunks may run concurrently.
func (it *Iterator) halfPass(phi []float64, parity int) Stats {
	last := len(phi) - 1 // exclusive bound of the interior
	first := 1
	if first%2 != parity {
		first++
	}
	if it.workers == 1 || last-first < 2*it.workers {
		return it.span(phi, first, last, 2)
	}

	// contiguous chunks, each starting on a node of the right parity
	chunk := (last - first + it.workers - 1) / it.workers
	var wg sync.WaitGroup
	for w := 0; w < it.workers; w++ {
		lo := first + w*chunk
		if (lo-first)%2 != 0 {
			lo++
		}
		hi := first + (w+1)*chunk
		if hi > last {
			hi = last
		}
		it.partial[w] = Stats{}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			it.partial[w] = it.span(phi, lo, hi, 2)
		}(w, lo, hi)
	}
	wg.Wait() // barrier between half passes

	var st Stats
	for _, p := range it.partial {
		st.merge(p)
	}

	return st
}

// relax performs steps 1–5 at interior node i and returns |Δφ_i|.
func (it *Iterator) relax(phi []float64, i int) (delta float64, clamped int) {
	old := phi[i]
	rho, clamped := it.ChargeDensity(i, old)
	raw := it.op.SolveLocal(i, phi[i-1], phi[i+1], rho*it.op.RHSScale(i))
	next := old + it.omega*(raw-old)
	phi[i] = next

	return math.Abs(next - old), clamped
}

// ChargeDensity evaluates ρ(φ, z_i) in C/m³ with clamped exponents and
// reports how many exponents hit the clamp.
func (it *Iterator) ChargeDensity(i int, phi float64) (rho float64, clamped int) {
	el := it.el
	pc, pa := it.prof.PMF(i)
	xc, xa := el.BoltzmannFactors(phi, pc, pa)
	fc, kc := clampExp(xc, it.limit)
	fa, ka := clampExp(xa, it.limit)
	rho = it.prof.FixedCharge(i) + physics.ElementaryCharge*(el.ZCation*el.NCation*fc-el.ZAnion*el.NAnion*fa)
	clamped = kc + ka

	if el.NImpurity > 0 {
		ic, ia := it.prof.ImpurityPMF(i)
		x := el.EBeta * phi
		gc, k1 := clampExp(-x-ic, it.limit)
		ga, k2 := clampExp(x-ia, it.limit)
		rho += physics.ElementaryCharge * el.NImpurity * (gc - ga)
		clamped += k1 + k2
	}

	return rho, clamped
}

// ApplyBoundaries re-imposes both end conditions on phi and returns the
// number of clamped exponents met while evaluating fixed-charge ends.
//
// Fixed charge at the left end (mirrored at the right):
//
//	φ₀ = φ₁ + h·σ·ē/ε₀ + h²·ρ(φ₀)·ε⊥₀⁻¹/(2ε₀),   ē = (ε⊥₁⁻¹ + 3ε⊥₀⁻¹)/4
func (it *Iterator) ApplyBoundaries(phi []float64) int {
	n := len(phi) - 1

	return it.applyEnd(phi, it.left, 0, 1) + it.applyEnd(phi, it.right, n, n-1)
}

func (it *Iterator) applyEnd(phi []float64, bc BoundaryCondition, end, inner int) int {
	if bc.Kind == FixedPotential {
		phi[end] = bc.Value

		return 0
	}
	h := it.op.Spacing()
	e0, e1 := it.prof.InverseDielectric(end), it.prof.InverseDielectric(inner)
	ebar := (e1 + 3*e0) / 4
	rho, clamped := it.ChargeDensity(end, phi[end])
	phi[end] = phi[inner] + (h*bc.Value*ebar+h*h*rho*e0/2)/physics.VacuumPermittivity

	return clamped
}

// clampExp returns exp(min(x, limit)) and 1 if the clamp was hit.
func clampExp(x, limit float64) (float64, int) {
	if x > limit {
		return math.Exp(limit), 1
	}

	return math.Exp(x), 0
}

// observe folds |Δφ| into the residual, letting NaN stick.
func (st *Stats) observe(d float64) {
	if d > st.Residual || math.IsNaN(d) {
		if !math.IsNaN(st.Residual) {
			st.Residual = d
		}
	}
}

func (st *Stats) merge(o Stats) {
	st.observe(o.Residual)
	st.Clamped += o.Clamped
}
