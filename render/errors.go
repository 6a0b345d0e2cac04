// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrUnknownPalette is returned for a palette name Palette does not know.
	ErrUnknownPalette = errors.New("render: unknown palette")

	// ErrPaletteSize is returned when fewer than one color is requested.
	ErrPaletteSize = errors.New("render: palette size must be > 0")

	// ErrInvalidResult indicates a result without a matrix, or whose names
	// or row labels disagree with the matrix shape.
	ErrInvalidResult = errors.New("render: invalid result")
)
