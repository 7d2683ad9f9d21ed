// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/archive"
	"github.com/katalvlaran/lvpbe/dataio"
	"github.com/katalvlaran/lvpbe/sor"
)

func TestParseValency(t *testing.T) {
	cases := []struct {
		in     string
		zc, za int
		ok     bool
	}{
		{"1", 1, 1, true},
		{"2", 2, 2, true},
		{"2,1", 2, 1, true},
		{" 3 , 1 ", 3, 1, true},
		{"1,2,3", 0, 0, false},
		{"x", 0, 0, false},
	}
	for _, tc := range cases {
		zc, za, err := parseValency(tc.in)
		if !tc.ok {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.zc, zc, tc.in)
		require.Equal(t, tc.za, za, tc.in)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-D", "4", "-b", "41", "-z", "2,1", "-c_imp", "5", "-order", "rb", "-phiL", "25"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, 4.0, cfg.distance)
	require.Equal(t, 41, cfg.bins)
	require.Equal(t, 2, cfg.sys.CationValency)
	require.Equal(t, 1, cfg.sys.AnionValency)
	require.InDelta(t, 5e-9, cfg.sys.ImpurityConcentration, 1e-20)
	require.Equal(t, sor.RedBlack, cfg.ordering)

	length, left, right := cfg.domain()
	require.Equal(t, 2.0, length)
	require.Equal(t, sor.Potential(0.025), left)
	require.Equal(t, sor.Symmetry(), right)

	for _, args := range [][]string{
		{"-b", "2"},
		{"-omega", "2"},
		{"-tol", "0"},
		{"-order", "jacobi"},
		{"-z", "a"},
		{"extra"},
	} {
		_, err := parseFlags(args, io.Discard)
		require.Error(t, err, args)
	}
}

func TestRun_HalfSpace(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	cfg, err := parseFlags([]string{"-D", "2", "-b", "51", "-sig", "0.1", "-c", "0.5", "-out", dir, "-db", db}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.Contains(t, out.String(), "status:           converged")
	require.Contains(t, out.String(), "archived run:")
	require.Contains(t, out.String(), "surface charge:   0.10000 e/nm^2")

	for _, name := range []string{dataio.FilePotential, dataio.FileCation, dataio.FileAnion, dataio.FileImpurityCation, dataio.FileImpurityAnion} {
		vals, err := dataio.LoadProfile(filepath.Join(dir, name), 101)
		require.NoError(t, err, name)
		require.InDelta(t, vals[0], vals[100], 1e-9*(1+vals[0]), name)
	}
	psi, err := dataio.LoadProfile(filepath.Join(dir, dataio.FilePotential), 101)
	require.NoError(t, err)
	require.Greater(t, psi[0], psi[50])
	require.Greater(t, psi[50], 0.0)

	store, err := archive.Open(db)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Recent(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, "converged", runs[0].Status)
	require.Len(t, runs[0].Potential, 51)
}

func TestRun_FullGapFixedPotentials(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parseFlags([]string{
		"-full", "-D", "10", "-b", "101", "-phiL", "100", "-phiR", "100",
		"-c", "0.1", "-T", "298", "-omega", "1.5", "-tol", "1e-8", "-maxit", "5000", "-out", dir,
	}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &out, slog.New(slog.NewTextHandler(io.Discard, nil))))

	raw, err := os.ReadFile(filepath.Join(dir, dataio.FilePotential))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "# electrostatic potential for l_debye = 0.97 nm"))
	psi, err := dataio.LoadProfile(filepath.Join(dir, dataio.FilePotential), 101)
	require.NoError(t, err)
	require.InDelta(t, 100, psi[0], 1e-9)
	require.InDelta(t, 100, psi[100], 1e-9)
	require.Less(t, psi[50], 5.0)
}

func TestRun_ProfileFileLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	eps := filepath.Join(dir, "eps.txt")
	require.NoError(t, os.WriteFile(eps, []byte("0.0125\n0.0125\n"), 0o644))
	cfg, err := parseFlags([]string{"-b", "10", "-eps", eps, "-out", dir}, io.Discard)
	require.NoError(t, err)

	err = run(context.Background(), cfg, io.Discard, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.ErrorIs(t, err, dataio.ErrProfileLength)
}
