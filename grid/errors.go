// SPDX-License-Identifier: MIT

package grid

import "errors"

// ErrInvalidGrid indicates a malformed domain length or interval count.
var ErrInvalidGrid = errors.New("grid: invalid grid (need length > 0 and intervals >= 2)")
