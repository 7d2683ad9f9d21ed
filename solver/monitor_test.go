// SPDX-License-Identifier: MIT

package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpbe/sor"
)

// feed observes residuals in order and returns the index and cause of the
// first verdict, or (-1, nil) when the monitor never fires.
func feed(m *monitor, residuals []float64, clamped int) (int, error) {
	for i, r := range residuals {
		if err := m.observe(sor.Stats{Residual: r, Clamped: clamped}); err != nil {
			return i, err
		}
	}

	return -1, nil
}

func TestMonitor_GrowthStreak(t *testing.T) {
	cases := []struct {
		name      string
		window    int
		ratio     float64
		residuals []float64
		firesAt   int
	}{
		{"streak above ratio fires", 3, 2, []float64{1, 2, 3, 4, 5, 6}, 4},
		{"streak within ratio is tolerated", 3, 10, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, -1},
		{"streak of exactly window is tolerated", 3, 2, []float64{1, 2, 3, 4, 3.5, 4, 5, 6}, -1},
		{"streak restarts after a drop", 3, 2, []float64{1, 2, 3, 4, 0.5, 1, 2, 3, 4}, 8},
		{"ratio is measured against the best residual", 2, 3, []float64{10, 1, 2, 2.5, 3.5}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			at, err := feed(newMonitor(tc.window, tc.ratio), tc.residuals, 0)
			require.Equal(t, tc.firesAt, at)
			if tc.firesAt < 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrDiverged)
			require.NotErrorIs(t, err, ErrNumericOverflow)
		})
	}
}

func TestMonitor_ClampWindow(t *testing.T) {
	m := newMonitor(3, DefaultBlowUpRatio)
	at, err := feed(m, []float64{1, 0.5, 0.25}, 1)
	require.Equal(t, 2, at)
	require.ErrorIs(t, err, ErrNumericOverflow)
	require.ErrorIs(t, err, sor.ErrNumericOverflow)

	// An unclamped sweep breaks the run.
	m = newMonitor(3, DefaultBlowUpRatio)
	for _, c := range []int{2, 2, 0, 2, 2} {
		require.NoError(t, m.observe(sor.Stats{Residual: 0.1, Clamped: c}))
	}
	require.ErrorIs(t, m.observe(sor.Stats{Residual: 0.1, Clamped: 2}), ErrNumericOverflow)
}

func TestMonitor_NonFiniteResidual(t *testing.T) {
	for _, r := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := newMonitor(DefaultDivergenceWindow, DefaultBlowUpRatio)
		require.NoError(t, m.observe(sor.Stats{Residual: 1}))
		err := m.observe(sor.Stats{Residual: r})
		require.ErrorIs(t, err, ErrDiverged, "residual %g", r)
	}
}

func TestMonitor_Reset(t *testing.T) {
	m := newMonitor(5, 2)
	_, err := feed(m, []float64{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	require.Equal(t, 3, m.growth)
	require.Equal(t, 4, m.clamp)

	m.reset()
	require.Zero(t, m.growth)
	require.Zero(t, m.clamp)
	require.Zero(t, m.sweeps)
	require.True(t, math.IsInf(m.best, 1))

	// Without the reset this clamped sweep would close the window.
	require.NoError(t, m.observe(sor.Stats{Residual: 8, Clamped: 1}))
	require.NoError(t, m.observe(sor.Stats{Residual: 9, Clamped: 1}))
}

func TestMonitor_Stable(t *testing.T) {
	m := newMonitor(DefaultDivergenceWindow, DefaultBlowUpRatio)
	first := sor.Stats{Residual: 1}
	require.False(t, m.stable(first), "first sweep of a run")
	require.NoError(t, m.observe(first))

	require.True(t, m.stable(sor.Stats{Residual: 0.5}))
	require.False(t, m.stable(sor.Stats{Residual: 0.5, Clamped: 1}))
	require.False(t, m.stable(sor.Stats{Residual: 2}))

	m.reset()
	require.False(t, m.stable(sor.Stats{Residual: 0.1}))
}
