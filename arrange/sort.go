// SPDX-License-Identifier: MIT
// Package: arrange
//
// sort.go — sample and category ordering.
//
// Determinism:
//   • Every ordering is a stable sort, so ties keep their input order and
//     the same input always yields the same permutation.

package arrange

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/taxasum/matrix"
)

const (
	opSortSamples    = "SortSamples"
	opSortCategories = "SortCategories"
)

// SortSamples REORDERS the columns of m.
// Implementation:
//   - Stage 1: Validate m, the label count and the row key.
//   - Stage 2: Build the column permutation: alphabetical by label, or
//     ascending by the values of row ByRow(i).
//   - Stage 3: Apply Reverse, then gather columns.
//
// Returns the reordered copy, the reordered labels and the permutation
// (out column k is input column perm[k]).
//
// Errors:
//   - matrix.ErrTypeConflict for nil m.
//   - ErrShapeConflict when len(samples) != m.Cols().
//   - ErrOutOfRange when the ByRow index is not a row of m.
//
// Complexity:
//   - Time O(c log c + r*c), Space O(r*c).
func SortSamples(m matrix.Matrix, samples []string, opts ...Option) (*matrix.Dense, []string, []int, error) {
	// Stage 1 (Validate)
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, nil, arrangeErrorf(opSortSamples, err)
	}
	if len(samples) != m.Cols() {
		return nil, nil, nil, arrangeErrorf(opSortSamples,
			fmt.Errorf("%d labels for %d samples: %w", len(samples), m.Cols(), ErrShapeConflict))
	}
	o := gather(opts)
	if o.row >= m.Rows() {
		return nil, nil, nil, arrangeErrorf(opSortSamples,
			fmt.Errorf("row %d of %d: %w", o.row, m.Rows(), ErrOutOfRange))
	}

	// Stage 2 (Permutation)
	var perm []int
	if o.row < 0 {
		_, perm = SortAlphabetically(samples)
	} else {
		key := make([]float64, m.Cols())
		for j := range key {
			v, err := m.At(o.row, j)
			if err != nil {
				return nil, nil, nil, arrangeErrorf(opSortSamples, err)
			}
			key[j] = v
		}
		perm = identityPerm(len(key))
		sort.SliceStable(perm, func(a, b int) bool { return key[perm[a]] < key[perm[b]] })
	}

	// Stage 3 (Apply)
	if o.reverse {
		slices.Reverse(perm)
	}
	out, err := matrix.SelectColumns(m, perm)
	if err != nil {
		return nil, nil, nil, arrangeErrorf(opSortSamples, err)
	}

	return out, permute(samples, perm), perm, nil
}

// SortCategories REORDERS the rows of m.
// Implementation:
//   - Stage 1: Validate m and the label count.
//   - Stage 2: Build the row permutation for the method:
//     Abundance (descending row mean), Alpha, Retain or Custom.
//   - Stage 3: Pin FirstCategory to the front (not for Custom).
//   - Stage 4: Apply Reverse, then gather rows.
//
// Behavior highlights:
//   - Custom may name a category twice, or leave some out; the output has
//     exactly one row per name.
//
// Errors:
//   - matrix.ErrTypeConflict for nil m.
//   - ErrShapeConflict when len(rows) != m.Rows().
//   - ErrNoMatch / ErrAmbiguousMatch from the Custom or FirstCategory names.
//
// Complexity:
//   - Time O(r log r + r*c), Space O(r*c).
func SortCategories(m matrix.Matrix, rows []string, opts ...Option) (*matrix.Dense, []string, []int, error) {
	// Stage 1 (Validate)
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, nil, arrangeErrorf(opSortCategories, err)
	}
	if len(rows) != m.Rows() {
		return nil, nil, nil, arrangeErrorf(opSortCategories,
			fmt.Errorf("%d labels for %d categories: %w", len(rows), m.Rows(), ErrShapeConflict))
	}
	o := gather(opts)

	// Stage 2 (Permutation)
	var perm []int
	switch o.method {
	case Abundance:
		means, err := matrix.RowMean(m)
		if err != nil {
			return nil, nil, nil, arrangeErrorf(opSortCategories, err)
		}
		key, _ := means.Column(0)
		perm = identityPerm(len(rows))
		sort.SliceStable(perm, func(a, b int) bool { return key[perm[a]] > key[perm[b]] })
	case Alpha:
		_, perm = SortAlphabetically(rows)
	case Retain:
		perm = identityPerm(len(rows))
	case CustomOrder:
		perm = make([]int, len(o.order))
		for k, name := range o.order {
			i, err := FuzzyMatch(name, rows)
			if err != nil {
				return nil, nil, nil, arrangeErrorf(opSortCategories, err)
			}
			perm[k] = i
		}
	}

	// Stage 3 (Pin)
	if o.first != "" && o.method != CustomOrder {
		i, err := FuzzyMatch(o.first, rows)
		if err != nil {
			return nil, nil, nil, arrangeErrorf(opSortCategories, err)
		}
		at := slices.Index(perm, i)
		perm = append([]int{i}, slices.Delete(perm, at, at+1)...)
	}

	// Stage 4 (Apply)
	if o.reverse {
		slices.Reverse(perm)
	}
	out, err := matrix.SelectRows(m, perm)
	if err != nil {
		return nil, nil, nil, arrangeErrorf(opSortCategories, err)
	}

	return out, permute(rows, perm), perm, nil
}
