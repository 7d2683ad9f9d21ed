// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteColumns writes header as '#' comment lines followed by one "x y" row
// per entry.
func WriteColumns(w io.Writer, header string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrProfileLength)
	}
	bw := bufio.NewWriter(w)
	for _, h := range strings.Split(strings.TrimRight(header, "\n"), "\n") {
		if h == "" {
			continue
		}
		bw.WriteString("# ")
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	buf := make([]byte, 0, 64)
	for i := range x {
		buf = strconv.AppendFloat(buf[:0], x[i], 'e', 18, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, y[i], 'e', 18, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Output is the presentable form of a solve, usually already mirrored
// over the full gap.
//
//   - Z           — node positions in nm.
//   - Potential   — φ in mV.
//   - Cation …    — number densities in nm⁻³.
//   - Concentration (mol/l), Impurity (nmol/l), DebyeLength (nm) go into headers.
type Output struct {
	Z              []float64
	Potential      []float64
	Cation         []float64
	Anion          []float64
	ImpurityCation []float64
	ImpurityAnion  []float64

	Concentration float64
	Impurity      float64
	DebyeLength   float64
}

// Output file names inside the result directory.
const (
	FilePotential      = "psi.txt"
	FileCation         = "dens_pos.txt"
	FileAnion          = "dens_neg.txt"
	FileImpurityCation = "imp_pos.txt"
	FileImpurityAnion  = "imp_neg.txt"
)

// SaveResult writes the five column files into dir, creating it if needed.
func SaveResult(dir string, out *Output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	const cols = "col 1: z-distance [nm]\ncol 2: density [1/nm^3]\n"
	dens := fmt.Sprintf("density for bulk concentration c_0 = %.2f mol/l\n", out.Concentration) + cols
	imp := fmt.Sprintf("impurity density for concentration c_imp = %.2f nmol/l\n", out.Impurity) + cols
	psi := fmt.Sprintf("electrostatic potential for l_debye = %.2f nm\n", out.DebyeLength) +
		"col 1: z-distance [nm]\ncol 2: potential [mV]\n"

	files := []struct {
		name, header string
		y            []float64
	}{
		{FilePotential, psi, out.Potential},
		{FileCation, "cation " + dens, out.Cation},
		{FileAnion, "anion " + dens, out.Anion},
		{FileImpurityCation, "cation " + imp, out.ImpurityCation},
		{FileImpurityAnion, "anion " + imp, out.ImpurityAnion},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.header, out.Z, f.y); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path, header string, x, y []float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = WriteColumns(f, header, x, y); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
