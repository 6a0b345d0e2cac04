// SPDX-License-Identifier: MIT
// Package arrange: sentinel error set.
// Shape and index failures reuse the matrix sentinels so a caller holding
// both packages matches one value.

package arrange

import (
	"errors"

	"github.com/katalvlaran/taxasum/matrix"
)

var (
	// ErrNoMatch indicates that no candidate contains the target.
	ErrNoMatch = errors.New("arrange: no match")

	// ErrAmbiguousMatch indicates that several candidates contain the target
	// and none equals it exactly.
	ErrAmbiguousMatch = errors.New("arrange: ambiguous match")

	// ErrEmptyTarget is returned when a sub-table is requested for no samples.
	ErrEmptyTarget = errors.New("arrange: empty target list")

	ErrShapeConflict = matrix.ErrShapeConflict
	ErrOutOfRange    = matrix.ErrOutOfRange
)
