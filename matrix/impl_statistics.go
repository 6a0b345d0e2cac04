// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row-wise reduction kernels behind every summary mode:
//     each selected sample column is collapsed per category row.
//   - Delegate the arithmetic to gonum (mean, sum, population spread) and to
//     montanaflynn/stats (median) so the numbers match the reference tools.
//
// Exposed API:
//   - Presence(X)      -> (r×c)  1 where X[i,j] > 0, else 0
//   - PresenceCount(X) -> (r×1)  number of positive cells per row
//   - RowMean(X)       -> (r×1)  arithmetic mean per row
//   - RowMedian(X)     -> (r×1)  median per row (even length: mean of middle pair)
//   - RowSum(X)        -> (r×1)  sum per row
//   - RowStdDev(X)     -> (r×1)  population standard deviation per row
//   - RowStdErr(X)     -> (r×1)  population std / sqrt(c) per row
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths hand contiguous row views to the kernels without copying.
//
// AI-Hints:
//   - All collapsing kernels return a single column so downstream consumers
//     always see a matrix, never a bare vector.

package matrix

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opPresence      = "Presence"
	opPresenceCount = "PresenceCount"
	opRowMean       = "RowMean"
	opRowMedian     = "RowMedian"
	opRowSum        = "RowSum"
	opRowStdDev     = "RowStdDev"
	opRowStdErr     = "RowStdErr"
)

// presenceThreshold is the strict lower bound for a cell to count as present.
const presenceThreshold = 0.0

// rowKernel collapses one row of values into a scalar.
type rowKernel func(row []float64) (float64, error)

// reduceRows APPLIES kernel to every row of X and packs the results as (r×1).
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Dense fast-path passes row views; fallback gathers via At.
//   - Stage 3: Store kernel outputs into a fresh column.
//
// Errors:
//   - ErrTypeConflict for nil X; wrapped At or kernel errors.
//
// Complexity:
//   - Time O(r*c*k) where k is the kernel cost per element, Space O(r+c).
func reduceRows(op string, X Matrix, kernel rowKernel) (*Dense, error) {
	// Stage 1 (Validate): reductions require an array.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, 1)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	var i, j int
	var v float64

	// Stage 2 (Execute): Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			if v, err = kernel(d.rowView(i)); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i] = v
		}
		return out, nil
	}

	// Stage 2 (Execute fallback): gather each row through At.
	buf := make([]float64, c)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if buf[j], err = X.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
		}
		// Stage 3 (Store)
		if v, err = kernel(buf); err != nil {
			return nil, matrixErrorf(op, err)
		}
		out.data[i] = v
	}

	return out, nil
}

// Presence MAPS every cell to 1 when it is strictly positive and 0 otherwise.
// The shape of X is preserved: no columns are collapsed.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func Presence(X Matrix) (*Dense, error) {
	d, err := AsDense(X)
	if err != nil {
		return nil, matrixErrorf(opPresence, err)
	}
	for k, v := range d.data {
		if v > presenceThreshold {
			d.data[k] = 1
		} else {
			d.data[k] = 0
		}
	}

	return d, nil
}

// PresenceCount counts, per row, the columns whose value is strictly positive.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func PresenceCount(X Matrix) (*Dense, error) {
	return reduceRows(opPresenceCount, X, func(row []float64) (float64, error) {
		var n float64
		for _, v := range row {
			if v > presenceThreshold {
				n++
			}
		}
		return n, nil
	})
}

// RowMean returns the arithmetic mean of every row as an (r×1) column.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func RowMean(X Matrix) (*Dense, error) {
	return reduceRows(opRowMean, X, func(row []float64) (float64, error) {
		return stat.Mean(row, nil), nil
	})
}

// RowMedian returns the median of every row as an (r×1) column.
// For an even number of columns the two middle values are averaged.
// The kernel sorts a private copy, so X is never reordered.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r * c log c).
func RowMedian(X Matrix) (*Dense, error) {
	return reduceRows(opRowMedian, X, func(row []float64) (float64, error) {
		return stats.Median(stats.Float64Data(row))
	})
}

// RowSum returns the sum of every row as an (r×1) column.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func RowSum(X Matrix) (*Dense, error) {
	return reduceRows(opRowSum, X, func(row []float64) (float64, error) {
		return floats.Sum(row), nil
	})
}

// RowStdDev returns the population standard deviation (divisor c) of every
// row as an (r×1) column.
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func RowStdDev(X Matrix) (*Dense, error) {
	return reduceRows(opRowStdDev, X, func(row []float64) (float64, error) {
		return stat.PopStdDev(row, nil), nil
	})
}

// RowStdErr returns the standard error of every row as an (r×1) column:
// the population standard deviation divided by sqrt(c).
//
// Errors: ErrTypeConflict for nil X.
// Complexity: O(r*c).
func RowStdErr(X Matrix) (*Dense, error) {
	return reduceRows(opRowStdErr, X, func(row []float64) (float64, error) {
		return stat.StdErr(stat.PopStdDev(row, nil), float64(len(row))), nil
	})
}
