// SPDX-License-Identifier: MIT
// Package boolmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the boolmat
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions; panics
// are reserved for invariant violations (see tables.go, checkPacked).

package boolmat

import "errors"

// Every message is prefixed with "boolmat: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with call context via
// opErrorf at the public surface; callers still match with errors.Is.
var (
	// ErrInvalidSize is returned by New when the requested logical dimension
	// is non-positive. No matrix is created.
	ErrInvalidSize = errors.New("boolmat: size must be > 0")

	// ErrOutOfRange indicates a logical coordinate outside [0, Size()) on any
	// cell operation. The operation has no side effect.
	ErrOutOfRange = errors.New("boolmat: coordinate out of range")

	// ErrEmptyGrid indicates a FromDense input with no rows or no columns.
	ErrEmptyGrid = errors.New("boolmat: input grid must have at least one row and one column")

	// ErrNonRectangular indicates FromDense rows of differing lengths.
	ErrNonRectangular = errors.New("boolmat: all rows must have the same length")

	// ErrNonSquare indicates a rectangular but non-square FromDense input.
	ErrNonSquare = errors.New("boolmat: input grid must be square")
)
