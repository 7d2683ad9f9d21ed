// SPDX-License-Identifier: MIT

package physics

import "errors"

// ErrInvalidParameter is returned for unphysical inputs: non-positive
// temperature or dielectric response, negative concentrations, valencies
// below one, or non-finite values anywhere in the bundle.
var ErrInvalidParameter = errors.New("physics: invalid parameter")
