// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvpbe/grid"
	"github.com/katalvlaran/lvpbe/profile"
)

// ReadColumn returns the last field of every data row in r.
func ReadColumn(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '@' {
			continue
		}
		fields := strings.Fields(text)
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, text, ErrMalformed)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyProfile
	}

	return out, nil
}

// LoadProfile reads path and checks it holds exactly nodes values.
func LoadProfile(path string, nodes int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vals, err := ReadColumn(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(vals) != nodes {
		return nil, fmt.Errorf("%s: %d rows, %d nodes: %w", path, len(vals), nodes, ErrProfileLength)
	}

	return vals, nil
}

// ProfileArg interprets a command-line profile argument: a number is a
// constant profile, anything else is a table path loaded onto g's nodes.
func ProfileArg(arg string, g *grid.Grid) (profile.Function, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64); err == nil {
		return profile.Constant(v), nil
	}
	vals, err := LoadProfile(arg, g.Nodes())
	if err != nil {
		return nil, err
	}

	tab, err := profile.NewNodal(g, vals)
	if err != nil {
		return nil, err
	}

	return tab, nil
}
