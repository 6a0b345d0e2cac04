// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix contract.
// Row i is a category (taxon), column j is a sample. Every kernel in this
// package accepts the interface and takes a flat-buffer fast path when the
// concrete value is *Dense.
package matrix

// Matrix is a mutable category-by-sample grid of float64 values.
// Implementations answer every method in O(1) except Clone.
type Matrix interface {
	// Rows is the category count.
	Rows() int

	// Cols is the sample count.
	Cols() int

	// At reads cell (i, j); ErrOutOfRange outside [0,Rows)×[0,Cols).
	At(i, j int) (float64, error)

	// Set writes v into cell (i, j); ErrOutOfRange outside the grid.
	Set(i, j int, v float64) error

	// Clone deep-copies the grid in O(r*c).
	Clone() Matrix
}
