// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpbe/operator"
	"github.com/katalvlaran/lvpbe/sor"
)

// Solve iterates SOR sweeps on a copy of initial until the driver reaches a
// terminal state. A nil initial means ZeroGuess(p).
//
// Preconditions and validation (in order):
//  1. p, p.Grid and p.Profile must be non-nil (ErrNilProblem).
//  2. Grid and profile must agree on the node count (sor.ErrLengthMismatch).
//  3. Both boundary conditions must validate (sor.ErrInvalidBoundary).
//  4. initial must cover every node and be finite (ErrInvalidInitialGuess).
//
// Steps:
//  1. Resolve options; ω defaults to DefaultOmega(N).
//  2. Build the operator and the SOR iterator; impose both boundaries on φ.
//  3. Loop until a terminal state:
//     check ctx, sweep, record, test convergence (residual ≤ Tolerance),
//     then test divergence. On a divergence verdict with adaptive
//     relaxation enabled, multiply ω by the factor, restore the last stable
//     φ and keep going; otherwise stop as Diverged.
//
// Terminal states:
//
//   - Converged: residual ≤ Tolerance.
//   - Diverged: non-finite residual (ErrDiverged); residual growth for more
//     than DivergenceWindow sweeps while above BlowUpRatio × best
//     (ErrDiverged); clamped exponents in DivergenceWindow consecutive
//     sweeps (ErrNumericOverflow).
//   - MaxIterationsExceeded: budget spent (ErrMaxIterationsExceeded).
//   - Canceled: ctx done between two sweeps.
//
// Returns:
//
//   - res: always non-nil once validation passed; Potential is best effort
//     unless res.Converged(). res.Err() explains any non-converged status.
//   - err: non-nil only for invalid input or cancellation; on cancellation
//     the best-effort *Result is returned alongside ctx.Err().
//
// Notes:
//   - initial is never modified.
//   - Iterations counts every sweep, including those discarded by an
//     adaptive restore.
//   - Logging goes through WithLogger only: Debug every LogEvery sweeps,
//     Warn on each ω reduction, Info or Warn at the end.
//
// Complexity:
//
//   - Time:  O(N) per sweep.
//   - Space: O(N), 2N with adaptive relaxation (stable snapshot).
func Solve(ctx context.Context, p *Problem, initial []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := p.check(); err != nil {
		return nil, err
	}
	if initial == nil {
		initial = ZeroGuess(p)
	}
	if len(initial) != p.Grid.Nodes() {
		return nil, fmt.Errorf("len=%d, nodes=%d: %w", len(initial), p.Grid.Nodes(), ErrInvalidInitialGuess)
	}
	if floats.HasNaN(initial) || math.IsInf(floats.Max(initial), 0) || math.IsInf(floats.Min(initial), 0) {
		return nil, fmt.Errorf("non-finite value: %w", ErrInvalidInitialGuess)
	}

	omega := o.Omega
	if omega == 0 {
		omega = DefaultOmega(p.Grid.Intervals())
	}
	op, err := operator.Build(p.Grid, p.Profile)
	if err != nil {
		return nil, err
	}
	it, err := sor.New(op, p.Profile, p.Left, p.Right, sor.Config{
		Omega:         omega,
		Ordering:      o.Ordering,
		Workers:       o.Workers,
		ExponentLimit: o.ExponentLimit,
	})
	if err != nil {
		return nil, err
	}

	log := o.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &driver{
		it:   it,
		opts: o,
		log:  log,
		phi:  slices.Clone(initial),
		mon:  newMonitor(o.DivergenceWindow, o.BlowUpRatio),
	}
	d.res.Clamped = it.ApplyBoundaries(d.phi)
	if o.Adaptive {
		d.stable = slices.Clone(d.phi)
	}
	log.Debug("solve started",
		"nodes", p.Grid.Nodes(),
		"omega", omega,
		"ordering", o.Ordering.String(),
		"left", p.Left.String(),
		"right", p.Right.String(),
		"tolerance", o.Tolerance)

	err = d.run(ctx)
	d.finish()

	return &d.res, err
}

// driver owns φ for the duration of one solve.
type driver struct {
	it     *sor.Iterator
	opts   Options
	log    *slog.Logger
	phi    []float64
	stable []float64 // last stable φ, adaptive mode only
	mon    *monitor
	res    Result
}

func (d *driver) run(ctx context.Context) error {
	for k := 1; k <= d.opts.MaxIterations; k++ {
		if err := ctx.Err(); err != nil {
			d.res.Status = Canceled
			d.res.err = err

			return err
		}
		st, err := d.it.Sweep(d.phi)
		if err != nil {
			return err // unreachable: length was checked in Solve
		}
		d.record(k, st)
		if st.Residual <= d.opts.Tolerance {
			d.res.Status = Converged

			return nil
		}

		stable := d.mon.stable(st)
		if verdict := d.mon.observe(st); verdict != nil {
			if d.damp(verdict) {
				continue
			}
			d.res.Status = Diverged
			d.res.err = fmt.Errorf("sweep %d: %w", k, verdict)

			return nil
		}
		if stable && d.stable != nil {
			copy(d.stable, d.phi)
		}
	}
	d.res.Status = MaxIterationsExceeded
	d.res.err = fmt.Errorf("%d sweeps, residual %g > %g: %w",
		d.opts.MaxIterations, d.res.Residual, d.opts.Tolerance, ErrMaxIterationsExceeded)

	return nil
}

func (d *driver) record(k int, st sor.Stats) {
	d.res.Iterations = k
	d.res.Residual = st.Residual
	d.res.Clamped += st.Clamped
	if d.opts.History {
		d.res.History = append(d.res.History, st.Residual)
	}
	if k%d.opts.LogEvery == 0 {
		d.log.Debug("sor sweep",
			"iteration", k,
			"residual", st.Residual,
			"omega", d.it.Omega(),
			"clamped", st.Clamped)
	}
}

// damp lowers ω and restores the last stable φ. It reports false when
// adaptive relaxation is off or exhausted.
func (d *driver) damp(cause error) bool {
	o := d.opts
	if !o.Adaptive || d.res.Retries >= o.AdaptiveRetries {
		return false
	}
	next := d.it.Omega() * o.AdaptiveFactor
	if next < o.AdaptiveFloor || d.it.SetOmega(next) != nil {
		return false
	}
	d.res.Retries++
	copy(d.phi, d.stable)
	d.mon.reset()
	d.log.Warn("reducing relaxation factor",
		"omega", next,
		"retry", d.res.Retries,
		"iteration", d.res.Iterations,
		"cause", cause.Error())

	return true
}

func (d *driver) finish() {
	d.res.Potential = d.phi
	d.res.Omega = d.it.Omega()
	level := slog.LevelInfo
	if d.res.Status != Converged {
		level = slog.LevelWarn
	}
	d.log.Log(context.Background(), level, "solve finished",
		"status", d.res.Status.String(),
		"iterations", d.res.Iterations,
		"residual", d.res.Residual,
		"omega", d.res.Omega,
		"retries", d.res.Retries)
}

// monitor applies the divergence policy to successive sweep statistics.
type monitor struct {
	window int
	ratio  float64

	sweeps int
	best   float64
	prev   float64
	growth int
	clamp  int
}

func newMonitor(window int, ratio float64) *monitor {
	m := &monitor{window: window, ratio: ratio}
	m.reset()

	return m
}

func (m *monitor) reset() {
	m.sweeps = 0
	m.best = math.Inf(1)
	m.prev = math.Inf(1)
	m.growth = 0
	m.clamp = 0
}

// stable reports whether st improves on every earlier sweep of the current
// run without clamping. The first sweep of a run is never stable.
func (m *monitor) stable(st sor.Stats) bool {
	return m.sweeps > 0 && st.Clamped == 0 && st.Residual < m.best
}

// observe folds st into the policy and returns the divergence cause, if any.
func (m *monitor) observe(st sor.Stats) error {
	r := st.Residual
	m.sweeps++
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return fmt.Errorf("residual %g: %w", r, ErrDiverged)
	}

	if st.Clamped > 0 {
		m.clamp++
	} else {
		m.clamp = 0
	}
	if m.clamp >= m.window {
		return fmt.Errorf("exponents clamped in %d consecutive sweeps: %w", m.clamp, ErrNumericOverflow)
	}

	if r > m.prev {
		m.growth++
	} else {
		m.growth = 0
	}
	m.prev = r
	if r < m.best {
		m.best = r
	}
	if m.growth > m.window && r > m.ratio*m.best {
		return fmt.Errorf("residual %g grew for %d sweeps (best %g): %w", r, m.growth, m.best, ErrDiverged)
	}

	return nil
}
