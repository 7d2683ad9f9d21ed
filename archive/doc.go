// SPDX-License-Identifier: MIT

// Package archive keeps a SQLite record of solve runs: the physical
// parameters, the boundary conditions, the terminal state and φ itself.
//
// Runs are stored in a single table keyed by a random UUID. Residuals that
// ended as NaN are stored as NULL, and φ is stored as a little-endian
// float64 BLOB so every bit of the solution round-trips.
//
// The database is opened in WAL mode with a 5 s busy timeout.
package archive
