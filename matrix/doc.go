// SPDX-License-Identifier: MIT

// Package matrix holds the numeric substrate of taxasum: a row-major Dense
// matrix (rows are categories such as taxa, columns are samples), the
// ValidateDataArray gate that every table mutation goes through, column and
// row gathering, and the row-wise reduction kernels used to summarize a
// selection of samples.
//
// Shape policy:
//
//	[]float64 / []int         -> (n × 1)   only the row count is checked
//	[][]float64 / [][]int     -> (r × c)   rows, then columns are checked
//	Matrix                    -> (r × c)   copied, never aliased
//
// Reductions:
//
//	Presence       (r × c)   1 where value > 0
//	PresenceCount  (r × 1)
//	RowMean        (r × 1)   gonum/stat
//	RowMedian      (r × 1)   montanaflynn/stats
//	RowSum         (r × 1)   gonum/floats
//	RowStdDev      (r × 1)   population standard deviation
//	RowStdErr      (r × 1)   population std / sqrt(c)
//
// Errors are package sentinels (ErrTypeConflict, ErrShapeConflict,
// ErrOutOfRange, ErrInvalidDimensions) wrapped with an operation tag; match
// them with errors.Is.
package matrix
