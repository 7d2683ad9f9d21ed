// SPDX-License-Identifier: MIT

package archive

import "errors"

// ErrRunNotFound indicates an unknown run ID.
var ErrRunNotFound = errors.New("archive: run not found")
