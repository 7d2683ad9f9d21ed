// SPDX-License-Identifier: MIT

package operator

import "errors"

var (
	// ErrShapeMismatch indicates the profile does not cover the grid node-for-node.
	ErrShapeMismatch = errors.New("operator: profile length does not match grid nodes")

	// ErrNotInterior indicates a stencil was requested for a boundary or out-of-range node.
	ErrNotInterior = errors.New("operator: node is not interior")
)
