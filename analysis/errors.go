// SPDX-License-Identifier: MIT

package analysis

import "errors"

// ErrLengthMismatch indicates a slice that does not cover the grid nodes.
var ErrLengthMismatch = errors.New("analysis: slice length does not match node count")
