// SPDX-License-Identifier: MIT

package dataio

import "errors"

var (
	// ErrEmptyProfile indicates a table without a single data row.
	ErrEmptyProfile = errors.New("dataio: profile table has no data rows")

	// ErrProfileLength indicates a table whose row count differs from the node count.
	ErrProfileLength = errors.New("dataio: profile length does not match node count")

	// ErrMalformed indicates a row whose value is not a number.
	ErrMalformed = errors.New("dataio: malformed table row")
)
