// SPDX-License-Identifier: MIT

// Command pbesolve solves the modified Poisson–Boltzmann equation between
// two charged plates and writes the potential and ion density profiles.
//
// By default only the half space from the left wall to the midplane is
// solved (surface charge -sig at z = 0, zero field at z = D/2) and the
// result is mirrored over the full gap. -full solves the whole gap with
// independent walls (-sig/-sigR, or fixed potentials -phiL/-phiR).
//
// Profile flags (-eps, -rho, -pmf_*) take either a number, used in the
// whole domain, or a file with one value per node.
//
// Usage:
//
//	pbesolve -D 4 -b 200 -sig -0.1 -c 0.1 -z 2,1 -out results/ -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpbe/analysis"
	"github.com/katalvlaran/lvpbe/archive"
	"github.com/katalvlaran/lvpbe/dataio"
	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/physics"
	"github.com/katalvlaran/lvpbe/profile"
	"github.com/katalvlaran/lvpbe/solver"
	"github.com/katalvlaran/lvpbe/sor"
)

// nanomolar converts the -c_imp unit (nmol/l) to mol/l.
const nanomolar = 1e-9

type config struct {
	distance   float64
	bins       int
	sigma      float64 // e/nm², left wall
	sigmaRight float64 // e/nm², right wall in -full mode
	phiLeft    *float64
	phiRight   *float64
	full       bool

	sys physics.System

	invEps, rho         string
	pmfCat, pmfAn       string
	pmfImpCat, pmfImpAn string
	out, db             string
	verbose, adaptive   bool
	omega, tol          float64
	maxIt, workers      int
	ordering            sor.Ordering
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("pbesolve failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{sys: physics.DefaultSystem()}
	fs := flag.NewFlagSet("pbesolve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&cfg.distance, "D", 1, "plate separation [nm]")
	fs.IntVar(&cfg.bins, "b", 100, "number of grid nodes; tabulated profiles must have this length")
	fs.Float64Var(&cfg.sigma, "sig", 0, "surface charge on the (left) wall [e/nm^2]")
	fs.Float64Var(&cfg.sigmaRight, "sigR", 0, "surface charge on the right wall with -full [e/nm^2]")
	fs.Func("phiL", "fixed left wall potential [mV], overrides -sig", floatPtr(&cfg.phiLeft))
	fs.Func("phiR", "fixed right wall potential [mV] with -full, overrides -sigR", floatPtr(&cfg.phiRight))
	fs.BoolVar(&cfg.full, "full", false, "solve the whole gap instead of the half space")
	fs.Func("z", "ion valencies: 'z' or 'z+,z-' (default 1)", func(s string) error {
		zc, za, err := parseValency(s)
		cfg.sys.CationValency, cfg.sys.AnionValency = zc, za
		return err
	})
	fs.Float64Var(&cfg.sys.Concentration, "c", physics.DefaultConcentration, "bulk salt concentration [mol/l]")
	cImp := fs.Float64("c_imp", 0, "impurity concentration [nmol/l]")
	fs.Float64Var(&cfg.sys.Temperature, "T", physics.DefaultTemperature, "temperature [K]")
	fs.StringVar(&cfg.invEps, "eps", strconv.FormatFloat(1.0/80, 'g', -1, 64), "inverse dielectric profile: number or file")
	fs.StringVar(&cfg.rho, "rho", "", "fixed charge density [e/nm^3]: number or file")
	fs.StringVar(&cfg.pmfCat, "pmf_+", "", "cation PMF [kT]: number or file")
	fs.StringVar(&cfg.pmfAn, "pmf_-", "", "anion PMF [kT]: number or file")
	fs.StringVar(&cfg.pmfImpCat, "pmf_imp_+", "", "impurity cation PMF [kT]: number or file")
	fs.StringVar(&cfg.pmfImpAn, "pmf_imp_-", "", "impurity anion PMF [kT]: number or file")
	fs.StringVar(&cfg.out, "out", ".", "directory for the result files")
	fs.StringVar(&cfg.db, "db", "", "SQLite archive to record the run in (optional)")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose: log the residual while iterating")
	fs.Float64Var(&cfg.omega, "omega", 0, "relaxation factor (0 = 2/(1+sqrt(pi/N)))")
	fs.Float64Var(&cfg.tol, "tol", solver.DefaultTolerance, "convergence tolerance on max|dphi| [V]")
	fs.IntVar(&cfg.maxIt, "maxit", solver.DefaultMaxIterations, "maximum number of sweeps")
	fs.BoolVar(&cfg.adaptive, "adaptive", false, "damp omega and retry instead of diverging")
	fs.IntVar(&cfg.workers, "workers", 1, "goroutines per red-black half sweep")
	fs.Func("order", "node ordering: sequential or red-black", func(s string) error {
		o, err := sor.ParseOrdering(s)
		cfg.ordering = o
		return err
	})

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg.sys.ImpurityConcentration = *cImp * nanomolar
	switch {
	case cfg.bins < grid.MinIntervals+1:
		return nil, fmt.Errorf("-b %d: need at least %d nodes", cfg.bins, grid.MinIntervals+1)
	case !(cfg.omega == 0 || (cfg.omega > 0 && cfg.omega < 2)):
		return nil, fmt.Errorf("-omega %g: must lie in (0, 2)", cfg.omega)
	case !(cfg.tol > 0):
		return nil, fmt.Errorf("-tol %g: must be positive", cfg.tol)
	case cfg.maxIt <= 0 || cfg.workers <= 0:
		return nil, errors.New("-maxit and -workers must be positive")
	}

	return cfg, nil
}

func floatPtr(dst **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

// parseValency accepts "2" (both ions) or "2,1" (cation, anion).
func parseValency(s string) (cation, anion int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return 0, 0, fmt.Errorf("valency list %q: at most two entries", s)
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		if vals[i], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			return 0, 0, fmt.Errorf("valency %q: %w", p, err)
		}
	}
	if len(vals) == 1 {
		return vals[0], vals[0], nil
	}

	return vals[0], vals[1], nil
}

func (c *config) domain() (length float64, left, right sor.BoundaryCondition) {
	left = sor.SurfaceCharge(physics.SurfaceChargeSI(c.sigma))
	if c.phiLeft != nil {
		left = sor.Potential(*c.phiLeft / 1e3)
	}
	if !c.full {
		return c.distance / 2, left, sor.Symmetry()
	}
	right = sor.SurfaceCharge(physics.SurfaceChargeSI(c.sigmaRight))
	if c.phiRight != nil {
		right = sor.Potential(*c.phiRight / 1e3)
	}

	return c.distance, left, right
}

func (c *config) inputs(g *grid.Grid) (profile.Inputs, error) {
	var in profile.Inputs
	load := func(arg string, dst *profile.Function) error {
		if arg == "" {
			return nil
		}
		fn, err := dataio.ProfileArg(arg, g)
		if err != nil {
			return err
		}
		*dst = fn
		return nil
	}

	var invEps profile.Function
	for _, f := range []struct {
		arg string
		dst *profile.Function
	}{
		{c.invEps, &invEps},
		{c.rho, &in.FixedCharge},
		{c.pmfCat, &in.PMFCation},
		{c.pmfAn, &in.PMFAnion},
		{c.pmfImpCat, &in.PMFImpurityCation},
		{c.pmfImpAn, &in.PMFImpurityAnion},
	} {
		if err := load(f.arg, f.dst); err != nil {
			return in, err
		}
	}
	if invEps == nil {
		return in, errors.New("-eps: inverse dielectric profile is required")
	}
	in.Dielectric = profile.Inverse{Of: invEps}

	return in, nil
}

func run(ctx context.Context, cfg *config, stdout io.Writer, logger *slog.Logger) error {
	length, left, right := cfg.domain()
	g, err := grid.New(length, cfg.bins-1)
	if err != nil {
		return err
	}
	in, err := cfg.inputs(g)
	if err != nil {
		return err
	}
	prob, err := solver.NewProblem(g, cfg.sys, in, left, right)
	if err != nil {
		return err
	}

	opts := []solver.Option{
		solver.WithTolerance(cfg.tol),
		solver.WithMaxIterations(cfg.maxIt),
		solver.WithOrdering(cfg.ordering),
		solver.WithWorkers(cfg.workers),
		solver.WithLogger(logger),
	}
	if cfg.omega != 0 {
		opts = append(opts, solver.WithOmega(cfg.omega))
	}
	if cfg.adaptive {
		opts = append(opts, solver.WithAdaptiveRelaxation(
			solver.DefaultAdaptiveFactor, solver.DefaultAdaptiveFloor, solver.DefaultAdaptiveRetries))
	}

	start := time.Now()
	res, err := solver.Solve(ctx, prob, solver.GouyChapmanGuess(prob), opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := save(cfg, prob, res); err != nil {
		return err
	}
	if cfg.db != "" {
		if err := record(cfg.db, prob, res, stdout); err != nil {
			return err
		}
	}
	if err := summarize(stdout, prob, res, elapsed); err != nil {
		return err
	}

	return res.Err()
}

// save derives the density profiles and writes the result files, mirrored
// over the full gap in half-space mode.
func save(cfg *config, prob *solver.Problem, res *solver.Result) error {
	d, err := analysis.IonDensities(prob.Profile, res.Potential)
	if err != nil {
		return err
	}
	z := prob.Grid.Coordinates()
	cols := [][]float64{
		analysis.Millivolts(res.Potential),
		d.Cation, d.Anion, d.ImpurityCation, d.ImpurityAnion,
	}
	zz := z
	if !cfg.full {
		for i, col := range cols {
			if zz, cols[i], err = analysis.Mirror(z, col); err != nil {
				return err
			}
		}
	}

	debye, err := cfg.sys.DebyeLength(prob.Profile.MeanDielectric())
	if err != nil {
		return err
	}

	return dataio.SaveResult(cfg.out, &dataio.Output{
		Z:              zz,
		Potential:      cols[0],
		Cation:         cols[1],
		Anion:          cols[2],
		ImpurityCation: cols[3],
		ImpurityAnion:  cols[4],
		Concentration:  cfg.sys.Concentration,
		Impurity:       cfg.sys.ImpurityConcentration / nanomolar,
		DebyeLength:    debye / physics.Nanometer,
	})
}

func record(path string, prob *solver.Problem, res *solver.Result, stdout io.Writer) error {
	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	run := archive.NewRun(prob, res)
	if err := store.Save(run); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "archived run:     %s\n", run.ID)

	return err
}

func summarize(w io.Writer, prob *solver.Problem, res *solver.Result, elapsed time.Duration) error {
	sys := prob.Profile.System()
	debye, err := sys.DebyeLength(prob.Profile.MeanDielectric())
	if err != nil {
		return err
	}
	excess, err := analysis.ExcessCharge(prob.Grid, prob.Profile, res.Potential)
	if err != nil {
		return err
	}
	var walls float64
	for _, bc := range []sor.BoundaryCondition{prob.Left, prob.Right} {
		if bc.Kind == sor.FixedCharge {
			walls += physics.SurfaceChargeUnits(bc.Value)
		}
	}
	_, minPhi := analysis.Minimum(res.Potential)

	_, err = fmt.Fprintf(w, `status:           %s
sweeps:           %s (%s, omega %.4f, %d retries)
residual:         %.3e V
Debye length:     %s
surface charge:   %.5f e/nm^2
excess charge:    %.5f e/nm^2
potential range:  %.3f … %.3f mV
`,
		res.Status,
		humanize.Comma(int64(res.Iterations)), elapsed.Round(time.Millisecond), res.Omega, res.Retries,
		res.Residual,
		humanize.SIWithDigits(debye, 2, "m"),
		walls,
		excess,
		minPhi*1e3, floats.Max(res.Potential)*1e3,
	)

	return err
}
