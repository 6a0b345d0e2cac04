// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column and row gathering used by group resolution (SelectColumns) and
//     by the sorting helpers (SelectRows, both accept any permutation).
//
// Determinism & Performance:
//   - Output order follows the index slice exactly; duplicates are allowed.
//   - Dense fast path copies directly out of the flat buffer.

package matrix

import "fmt"

const (
	opSelectColumns = "SelectColumns"
	opSelectRows    = "SelectRows"
)

// matrixErrorf wraps an underlying error with the kernel operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SelectColumns GATHERS the listed columns of m into a new r×len(idx) *Dense.
// Implementation:
//   - Stage 1: Validate m and every index.
//   - Stage 2: Copy column idx[k] of every row into output column k.
//
// Behavior highlights:
//   - Column order follows idx; the same column may appear more than once.
//
// Errors:
//   - ErrTypeConflict (nil m), ErrShapeConflict (empty idx), ErrOutOfRange.
//
// Complexity:
//   - Time O(r*len(idx)), Space O(r*len(idx)).
func SelectColumns(m Matrix, idx []int) (*Dense, error) {
	// Stage 1 (Validate)
	if err := ValidateColumnIndices(m, idx); err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}

	// Stage 2 (Execute)
	r, k := m.Rows(), len(idx)
	out, err := NewDense(r, k)
	if err != nil {
		return nil, matrixErrorf(opSelectColumns, err)
	}
	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			src := d.rowView(i)
			dst := out.data[i*k : (i+1)*k]
			for j = 0; j < k; j++ {
				dst[j] = src[idx[j]]
			}
		}
		return out, nil
	}
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < k; j++ {
			if v, err = m.At(i, idx[j]); err != nil {
				return nil, matrixErrorf(opSelectColumns, err)
			}
			out.data[i*k+j] = v
		}
	}

	return out, nil
}

// SelectRows gathers the listed rows of m into a new len(idx)×c *Dense.
//
// Errors: ErrTypeConflict (nil m), ErrShapeConflict (empty idx), ErrOutOfRange.
// Complexity: O(len(idx)*c).
func SelectRows(m Matrix, idx []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	if len(idx) == 0 {
		return nil, matrixErrorf(opSelectRows, ErrShapeConflict)
	}
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opSelectRows, err)
	}
	c := src.c
	out, _ := NewDense(len(idx), c) // len(idx) > 0 and c > 0 for any valid Dense
	for k, i := range idx {
		if i < 0 || i >= src.r {
			return nil, matrixErrorf(opSelectRows, fmt.Errorf("row %d of %d: %w", i, src.r, ErrOutOfRange))
		}
		copy(out.data[k*c:(k+1)*c], src.rowView(i))
	}

	return out, nil
}
