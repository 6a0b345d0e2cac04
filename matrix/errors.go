// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with fmt.Errorf("%s: %w", op, ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// type -> labels -> rows -> columns -> index.

var (
	// ErrTypeConflict is returned when a value's runtime type does not match
	// what an operation requires: unsupported data containers in
	// ValidateDataArray, nil label sequences, or a nil matrix handed to a
	// reduction kernel.
	ErrTypeConflict = errors.New("matrix: type conflict")

	// ErrShapeConflict indicates that array dimensions disagree with label
	// counts, that 2-D input is ragged, or that the input holds no values.
	ErrShapeConflict = errors.New("matrix: shape conflict")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
