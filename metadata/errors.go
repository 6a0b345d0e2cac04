// SPDX-License-Identifier: MIT
// Package metadata: sentinel error set.
// All validators return these sentinels (wrapped with an operation tag);
// callers match them via errors.Is.

package metadata

import "errors"

var (
	// ErrTypeConflict is returned when the metadata is absent or an entry is
	// not itself a field→value mapping.
	ErrTypeConflict = errors.New("metadata: type conflict")

	// ErrSchemaConflict indicates that two samples carry different field sets.
	ErrSchemaConflict = errors.New("metadata: field sets differ between samples")

	// ErrMissingSample indicates that a declared sample id has no metadata entry.
	ErrMissingSample = errors.New("metadata: sample not present")

	// ErrUnknownField indicates that a requested field is not part of the schema.
	ErrUnknownField = errors.New("metadata: unknown field")
)
