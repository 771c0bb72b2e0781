// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Shape and coordinate failures are reported via these sentinels; coercion
// failures on typed variants surface the fixedarray sentinels unchanged
// (fixedarray.ErrCoercion, fixedarray.ErrTypeMismatch). Match with errors.Is.

package ndarray

import "errors"

var (
	// ErrInvalidShape is returned when a shape has fewer than two
	// dimensions or any dimension < 1. A 1-D shape is rejected on purpose:
	// use fixedarray for linear storage.
	ErrInvalidShape = errors.New("ndarray: shape needs at least two positive dimensions")

	// ErrInvalidIndex indicates a coordinate tuple of wrong arity or with
	// a component outside its dimension's bounds.
	ErrInvalidIndex = errors.New("ndarray: invalid coordinate")
)
