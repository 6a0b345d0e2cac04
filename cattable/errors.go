// SPDX-License-Identifier: MIT
// Package cattable: sentinel error set.
// Every failure of the table surfaces as one of these sentinels (or a
// re-exported matrix/metadata sentinel), wrapped with an operation tag.
// Callers match with errors.Is. Option constructors panic on programmer
// errors; table methods never do.

package cattable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/taxasum/matrix"
	"github.com/katalvlaran/taxasum/metadata"
)

var (
	// ErrInvalidSelection indicates that the selection mode's parameters are
	// absent or do not resolve to any sample or group.
	ErrInvalidSelection = errors.New("cattable: invalid selection")

	// ErrMissingData is returned when a result is requested before a data
	// matrix has been supplied.
	ErrMissingData = errors.New("cattable: no data supplied")

	// ErrMissingSelection is returned when names are requested before a
	// selection has been resolved.
	ErrMissingSelection = errors.New("cattable: selection not resolved")

	// ErrNameToken indicates that a split name has no token at the
	// configured position.
	ErrNameToken = errors.New("cattable: no name token at position")

	// ErrInvalidConfig indicates a configuration value outside its domain
	// (unknown mode, empty delimiter) supplied through a mutator.
	ErrInvalidConfig = errors.New("cattable: invalid configuration")

	// ErrUnknownMode is returned by the Parse* helpers for unrecognized names.
	ErrUnknownMode = errors.New("cattable: unknown mode")
)

// Re-exported collaborator sentinels so callers only import cattable.
var (
	ErrTypeConflict   = matrix.ErrTypeConflict
	ErrShapeConflict  = matrix.ErrShapeConflict
	ErrSchemaConflict = metadata.ErrSchemaConflict
	ErrMissingSample  = metadata.ErrMissingSample
	ErrUnknownField   = metadata.ErrUnknownField
)

// tableErrorf wraps err with the operation tag. A metadata type conflict is
// additionally tagged with ErrTypeConflict so one sentinel covers both
// collaborators.
func tableErrorf(op string, err error) error {
	if errors.Is(err, metadata.ErrTypeConflict) && !errors.Is(err, ErrTypeConflict) {
		return fmt.Errorf("%s: %w: %w", op, ErrTypeConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
