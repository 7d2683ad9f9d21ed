// SPDX-License-Identifier: MIT

package profile

import "github.com/katalvlaran/lvpbe/physics"

// ErrInvalidParameter aliases physics.ErrInvalidParameter so that
// errors.Is matches regardless of which stage rejected the input.
var ErrInvalidParameter = physics.ErrInvalidParameter
