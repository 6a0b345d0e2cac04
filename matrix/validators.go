// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for data-array validation.
//   - ValidateDataArray is the gate every higher-level entity funnels through
//     before it touches a data matrix.
//
// Determinism & Performance:
//   - All checks are pure and deterministic; only ValidateDataArray allocates
//     (the canonical copy it returns).
//
// AI-Hints:
//   - Validation is idempotent: feeding a canonical *Dense back with the same
//     labels returns an equal matrix.
//   - 1-D input always becomes a single column; only its row count is checked.

package matrix

import "fmt"

// Validator tags for unified error wrapping.
const (
	opValidateNotNil       = "ValidateNotNil"
	opValidateDataArray    = "ValidateDataArray"
	opValidateColumnIndex  = "ValidateColumnIndices"
	tagRowsAgainstLabels   = "rows"
	tagColsAgainstLabels   = "columns"
	tagRaggedRows          = "ragged rows"
	tagEmptyData           = "empty data"
	tagUnsupportedDataType = "unsupported data type"
	tagNilLabels           = "nil labels"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrTypeConflict if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(opValidateNotNil, ErrTypeConflict)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf(opValidateNotNil, ErrTypeConflict)
	}

	return nil
}

// ValidateDataArray NORMALIZES raw numeric input into the canonical 2-D
// *Dense and checks it against the row and column label sequences.
// Implementation:
//   - Stage 1: Reject nil label sequences (not sequence-like).
//   - Stage 2: Convert data to a fresh *Dense; 1-D input becomes (n,1).
//   - Stage 3: Check rows against rowLabels, then (2-D input only) columns
//     against colLabels.
//
// Behavior highlights:
//   - The returned matrix never aliases caller memory.
//   - A Matrix argument is treated as genuinely 2-D even when it has one column.
//
// Inputs:
//   - data: []float64, []int, [][]float64, [][]int or any Matrix.
//   - rowLabels: one label per category row.
//   - colLabels: one label per sample column.
//
// Returns:
//   - *Dense: canonical (len(rowLabels) × C) copy of data.
//
// Errors:
//   - ErrTypeConflict: nil labels, nil data, unsupported container type.
//   - ErrShapeConflict: empty or ragged data, rows != len(rowLabels),
//     cols != len(colLabels).
//
// Determinism:
//   - Fixed row-major copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Call once at every mutation boundary; downstream kernels may then assume shape.
func ValidateDataArray(data any, rowLabels, colLabels []string) (*Dense, error) {
	// Stage 1 (Labels): both label sequences must exist.
	if rowLabels == nil || colLabels == nil {
		return nil, validatorErrorf(opValidateDataArray, validatorErrorf(tagNilLabels, ErrTypeConflict))
	}

	// Stage 2 (Convert): build the canonical copy and remember dimensionality.
	d, twoD, err := toCanonical(data)
	if err != nil {
		return nil, validatorErrorf(opValidateDataArray, err)
	}

	// Stage 3 (Shape): rows first, then columns for 2-D input.
	if d.r != len(rowLabels) {
		return nil, validatorErrorf(opValidateDataArray,
			fmt.Errorf("%s: %d data rows vs %d labels: %w", tagRowsAgainstLabels, d.r, len(rowLabels), ErrShapeConflict))
	}
	if twoD && d.c != len(colLabels) {
		return nil, validatorErrorf(opValidateDataArray,
			fmt.Errorf("%s: %d data columns vs %d labels: %w", tagColsAgainstLabels, d.c, len(colLabels), ErrShapeConflict))
	}

	return d, nil
}

// toCanonical converts a supported container into a fresh *Dense.
// The boolean reports whether the input was genuinely 2-D.
func toCanonical(data any) (*Dense, bool, error) {
	switch v := data.(type) {
	case *Dense:
		if v == nil {
			return nil, false, validatorErrorf(tagUnsupportedDataType, ErrTypeConflict)
		}
		return v.clone(), true, nil
	case Matrix:
		d, err := AsDense(v)
		if err != nil {
			return nil, false, err
		}
		return d, true, nil
	case []float64:
		return vectorToDense(v)
	case []int:
		return vectorToDense(intsToFloats(v))
	case [][]float64:
		return rowsToDense(v)
	case [][]int:
		rows := make([][]float64, len(v))
		for i := range v {
			rows[i] = intsToFloats(v[i])
		}
		return rowsToDense(rows)
	default:
		return nil, false, validatorErrorf(fmt.Sprintf("%s %T", tagUnsupportedDataType, data), ErrTypeConflict)
	}
}

// vectorToDense reshapes a 1-D vector into an (n,1) column.
func vectorToDense(v []float64) (*Dense, bool, error) {
	if len(v) == 0 {
		return nil, false, validatorErrorf(tagEmptyData, ErrShapeConflict)
	}
	d, _ := NewColumn(v) // len(v) > 0 guarantees valid dimensions

	return d, false, nil
}

// rowsToDense packs equal-length rows into a row-major *Dense.
func rowsToDense(rows [][]float64) (*Dense, bool, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, true, validatorErrorf(tagEmptyData, ErrShapeConflict)
	}
	r, c := len(rows), len(rows[0])
	d, _ := NewDense(r, c) // r,c > 0 checked above
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, true, validatorErrorf(fmt.Sprintf("%s: row %d has %d values, want %d", tagRaggedRows, i, len(rows[i]), c), ErrShapeConflict)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, true, nil
}

// intsToFloats widens integer counts to float64.
func intsToFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}

	return out
}

// AsDense returns m as a *Dense: a clone when m already is one, otherwise a
// copy built through At.
//
// Errors: ErrTypeConflict for nil, ErrInvalidDimensions for an empty matrix,
// wrapped At errors from the fallback path.
// Complexity: O(r*c).
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// ValidateColumnIndices checks that every index addresses a column of m.
//
// Errors: ErrTypeConflict for nil m, ErrShapeConflict for an empty index
// list, ErrOutOfRange for a bad index.
// Complexity: O(len(idx)).
func ValidateColumnIndices(m Matrix, idx []int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(opValidateColumnIndex, err)
	}
	if len(idx) == 0 {
		return validatorErrorf(opValidateColumnIndex, ErrShapeConflict)
	}
	c := m.Cols()
	for _, j := range idx {
		if j < 0 || j >= c {
			return validatorErrorf(opValidateColumnIndex, fmt.Errorf("column %d of %d: %w", j, c, ErrOutOfRange))
		}
	}

	return nil
}
