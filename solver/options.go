// SPDX-License-Identifier: MIT

// Package solver: functional configuration of the convergence driver.
// This file defines:
//   - Options / Option (functional options over a plain struct),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which starts from DefaultOptions and applies opts in order,
//   - DefaultOmega, the grid-dependent relaxation factor.
//
// Notes:
//   - Omega == 0 in Options means "pick DefaultOmega(N) at solve time";
//     every other value must lie in (0, 2).
//   - Adaptive relaxation is off unless WithAdaptiveRelaxation is given.
//     Its factor, floor and retry budget travel together so a half-configured
//     policy cannot exist.
//   - Panics are reserved for programmer errors in option arguments. Data
//     errors (grids, profiles, guesses) are returned by Solve as sentinels.
//   - Later options override earlier ones.
package solver

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvpbe/sor"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the residual max|Δφ| (V) that ends a solve as Converged.
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 100000

	// DefaultDivergenceWindow is the number of consecutive bad sweeps
	// (growing residual or clamped exponents) tolerated before Diverged.
	DefaultDivergenceWindow = 25

	// DefaultBlowUpRatio is how far above the best residual a growing residual
	// must be before the growth streak counts as divergence.
	DefaultBlowUpRatio = 1e3

	// DefaultLogEvery is the sweep period of Debug progress records.
	DefaultLogEvery = 1000
)

// Adaptive relaxation is off unless WithAdaptiveRelaxation is given.
const (
	DefaultAdaptiveFactor  = 0.5
	DefaultAdaptiveFloor   = 0.1
	DefaultAdaptiveRetries = 4
)

const (
	panicTolerance = "solver: WithTolerance: tol must be finite and > 0"
	panicMaxIter   = "solver: WithMaxIterations: n must be > 0"
	panicOmega     = "solver: WithOmega: omega must lie in (0, 2)"
	panicWindow    = "solver: WithDivergenceWindow: n must be > 0"
	panicBlowUp    = "solver: WithBlowUpRatio: ratio must be finite and >= 1"
	panicAdaptive  = "solver: WithAdaptiveRelaxation: need 0 < factor < 1, 0 < floor < 2, retries > 0"
	panicWorkers   = "solver: WithWorkers: n must be > 0"
	panicExpLimit  = "solver: WithExponentLimit: limit must be finite and > 0"
	panicLogEvery  = "solver: WithLogEvery: n must be > 0"
	panicNilLogger = "solver: WithLogger: logger is nil"
	panicOrdering  = "solver: WithOrdering: unknown ordering"
)

// Options holds the resolved driver configuration. Build it through
// functional options; fields are exported for inspection only.
type Options struct {
	Omega            float64 // 0 ⇒ DefaultOmega(N) at solve time
	Tolerance        float64
	MaxIterations    int
	DivergenceWindow int
	BlowUpRatio      float64

	Adaptive        bool
	AdaptiveFactor  float64
	AdaptiveFloor   float64
	AdaptiveRetries int

	Ordering      sor.Ordering
	Workers       int
	ExponentLimit float64

	History  bool
	Logger   *slog.Logger // nil ⇒ silent
	LogEvery int
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:        DefaultTolerance,
		MaxIterations:    DefaultMaxIterations,
		DivergenceWindow: DefaultDivergenceWindow,
		BlowUpRatio:      DefaultBlowUpRatio,
		AdaptiveFactor:   DefaultAdaptiveFactor,
		AdaptiveFloor:    DefaultAdaptiveFloor,
		AdaptiveRetries:  DefaultAdaptiveRetries,
		Ordering:         sor.Sequential,
		Workers:          1,
		ExponentLimit:    sor.DefaultExponentLimit,
		LogEvery:         DefaultLogEvery,
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// DefaultOmega returns ω = 2/(1+√(π/N)) for a grid of N intervals.
func DefaultOmega(intervals int) float64 {
	return 2 / (1 + math.Sqrt(math.Pi/float64(intervals)))
}

// WithOmega fixes the relaxation factor.
func WithOmega(omega float64) Option {
	return func(o *Options) {
		if !(omega > 0 && omega < 2) {
			panic(panicOmega)
		}
		o.Omega = omega
	}
}

// WithTolerance sets the convergence threshold on max|Δφ| in V.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || math.IsInf(tol, 1) {
			panic(panicTolerance)
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the number of sweeps.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(panicMaxIter)
		}
		o.MaxIterations = n
	}
}

// WithDivergenceWindow sets how many consecutive bad sweeps are tolerated.
func WithDivergenceWindow(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(panicWindow)
		}
		o.DivergenceWindow = n
	}
}

// WithBlowUpRatio sets the growth threshold relative to the best residual.
func WithBlowUpRatio(ratio float64) Option {
	return func(o *Options) {
		if !(ratio >= 1) || math.IsInf(ratio, 1) {
			panic(panicBlowUp)
		}
		o.BlowUpRatio = ratio
	}
}

// WithAdaptiveRelaxation enables ω damping on imminent divergence:
// ω ← ω·factor, restart from the best φ so far, at most retries times
// and never below floor.
func WithAdaptiveRelaxation(factor, floor float64, retries int) Option {
	return func(o *Options) {
		if !(factor > 0 && factor < 1) || !(floor > 0 && floor < 2) || retries <= 0 {
			panic(panicAdaptive)
		}
		o.Adaptive = true
		o.AdaptiveFactor = factor
		o.AdaptiveFloor = floor
		o.AdaptiveRetries = retries
	}
}

// WithOrdering selects sequential or red-black sweeps.
func WithOrdering(ord sor.Ordering) Option {
	return func(o *Options) {
		if ord != sor.Sequential && ord != sor.RedBlack {
			panic(panicOrdering)
		}
		o.Ordering = ord
	}
}

// WithWorkers sets the goroutines per red-black half pass.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(panicWorkers)
		}
		o.Workers = n
	}
}

// WithExponentLimit sets the Boltzmann exponent clamp.
func WithExponentLimit(limit float64) Option {
	return func(o *Options) {
		if !(limit > 0) || math.IsInf(limit, 1) {
			panic(panicExpLimit)
		}
		o.ExponentLimit = limit
	}
}

// WithHistory keeps the residual of every sweep in Result.History.
func WithHistory() Option {
	return func(o *Options) { o.History = true }
}

// WithLogger routes progress records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic(panicNilLogger)
		}
		o.Logger = l
	}
}

// WithLogEvery sets the Debug progress period in sweeps.
func WithLogEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(panicLogEvery)
		}
		o.LogEvery = n
	}
}
