// SPDX-License-Identifier: MIT

package arrange

import (
	"fmt"

	"github.com/katalvlaran/taxasum/matrix"
)

const (
	opSubTable = "SubTable"
	opOtherRow = "OtherRow"
)

// OtherLabel names the row that collects folded categories.
const OtherLabel = "Other"

// SubTable returns the columns of m named by targets, in target order.
// Targets must be exact sample labels; repeats are allowed.
//
// Errors:
//   - matrix.ErrTypeConflict for nil m.
//   - ErrShapeConflict when len(samples) != m.Cols().
//   - ErrEmptyTarget for an empty target list.
//   - ErrNoMatch for a target that is not a sample label.
func SubTable(m matrix.Matrix, samples, targets []string) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, arrangeErrorf(opSubTable, err)
	}
	if len(samples) != m.Cols() {
		return nil, arrangeErrorf(opSubTable,
			fmt.Errorf("%d labels for %d samples: %w", len(samples), m.Cols(), ErrShapeConflict))
	}
	if len(targets) == 0 {
		return nil, arrangeErrorf(opSubTable, ErrEmptyTarget)
	}
	index := make(map[string]int, len(samples))
	for j := len(samples) - 1; j >= 0; j-- {
		index[samples[j]] = j
	}
	cols := make([]int, len(targets))
	for k, id := range targets {
		j, ok := index[id]
		if !ok {
			return nil, arrangeErrorf(opSubTable, fmt.Errorf("sample %q: %w", id, ErrNoMatch))
		}
		cols[k] = j
	}

	out, err := matrix.SelectColumns(m, cols)
	if err != nil {
		return nil, arrangeErrorf(opSubTable, err)
	}

	return out, nil
}

// OtherRow keeps the first keep rows of m and sums the remaining rows into
// a trailing OtherLabel row. When keep covers every row, m is copied as is.
//
// Errors:
//   - matrix.ErrTypeConflict for nil m.
//   - ErrShapeConflict when len(rows) != m.Rows().
//   - ErrOutOfRange for keep < 0.
//
// Complexity: O(r*c).
func OtherRow(m matrix.Matrix, rows []string, keep int) (*matrix.Dense, []string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, arrangeErrorf(opOtherRow, err)
	}
	r, c := m.Rows(), m.Cols()
	if len(rows) != r {
		return nil, nil, arrangeErrorf(opOtherRow,
			fmt.Errorf("%d labels for %d categories: %w", len(rows), r, ErrShapeConflict))
	}
	if keep < 0 {
		return nil, nil, arrangeErrorf(opOtherRow, fmt.Errorf("keep %d: %w", keep, ErrOutOfRange))
	}
	if keep >= r {
		d, err := matrix.AsDense(m)
		if err != nil {
			return nil, nil, arrangeErrorf(opOtherRow, err)
		}
		return d, append([]string(nil), rows...), nil
	}

	out, err := matrix.NewDense(keep+1, c)
	if err != nil {
		return nil, nil, arrangeErrorf(opOtherRow, err)
	}
	var i, j int
	var v, acc float64
	for i = 0; i < r; i++ {
		dst := i
		if dst > keep {
			dst = keep
		}
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, arrangeErrorf(opOtherRow, err)
			}
			if acc, err = out.At(dst, j); err != nil {
				return nil, nil, arrangeErrorf(opOtherRow, err)
			}
			if err = out.Set(dst, j, acc+v); err != nil {
				return nil, nil, arrangeErrorf(opOtherRow, err)
			}
		}
	}
	labels := append(append([]string(nil), rows[:keep]...), OtherLabel)

	return out, labels, nil
}
