// SPDX-License-Identifier: MIT
// Package fixedarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// fixedarray package. All operations return these sentinels and tests check
// them via errors.Is. Context, where essential, is added by wrapping with
// fmt.Errorf("ctx: %w", ErrX) — callers still match with errors.Is.
// No operation panics on user-triggered error conditions.

package fixedarray

import "errors"

var (
	// ErrInvalidSize is returned when a constructor receives a size < 1.
	// Construction must fail before any allocation escapes.
	ErrInvalidSize = errors.New("fixedarray: size must be a positive integer")

	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("fixedarray: index out of range")

	// ErrCoercion indicates a value that cannot be converted to the
	// container's numeric element type (integer or float variants).
	ErrCoercion = errors.New("fixedarray: value cannot be coerced to element type")

	// ErrTypeMismatch indicates a value that is not a single-character
	// string on a character-typed write.
	ErrTypeMismatch = errors.New("fixedarray: value is not a single character")
)
