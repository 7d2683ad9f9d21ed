// SPDX-License-Identifier: MIT

// Package dataio reads tabulated profiles and writes solve results as
// whitespace-separated column files.
//
// Input tables:
//   - one row per grid node, blank lines and lines starting with '#' or '@'
//     are ignored (gnuplot / xmgrace comments);
//   - the last field of each row is the value, so both "v" and "z v"
//     layouts load;
//   - the row count must equal the node count (ErrProfileLength).
//
// Output files carry a '#'-prefixed header and two columns, z in nm and the
// quantity, in %.18e format.
package dataio
