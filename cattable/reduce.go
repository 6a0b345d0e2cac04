// SPDX-License-Identifier: MIT

package cattable

import (
	"fmt"

	"github.com/katalvlaran/taxasum/matrix"
)

const opResult = "Result"

// reducer collapses (or maps) a selected sub-matrix.
type reducer func(matrix.Matrix) (*matrix.Dense, error)

// identity passes the sub-matrix through as a fresh copy.
func identity(m matrix.Matrix) (*matrix.Dense, error) {
	return matrix.AsDense(m)
}

// reducers maps each reduction mode to its kernel.
var reducers = map[ReductionMode]reducer{
	Identity:      identity,
	Mean:          matrix.RowMean,
	Median:        matrix.RowMedian,
	Sum:           matrix.RowSum,
	Presence:      matrix.Presence,
	PresenceCount: matrix.PresenceCount,
}

// dispersers maps each dispersion mode to its kernel (NoDispersion has none).
var dispersers = map[DispersionMode]reducer{
	StdDev: matrix.RowStdDev,
	StdErr: matrix.RowStdErr,
}

// Result COMPUTES the summary of the current state.
// Implementation:
//   - Stage 1: Require data and re-validate the state.
//   - Stage 2: Resolve the selection and gather its columns.
//   - Stage 3: Apply the reduction kernel.
//   - Stage 4: Apply the dispersion kernel unless the selection is a single
//     sample or no dispersion was requested.
//   - Stage 5: Resolve output names.
//
// Behavior highlights:
//   - Nothing is cached; every call recomputes from the current state.
//   - Collapsing modes return (rows × 1); Identity and Presence return one
//     column per selected sample.
//   - Dispersion is always computed over the selected columns and is (rows × 1)
//     even under Identity or Presence.
//
// Errors:
//   - ErrMissingData, plus everything Select, the kernels and Label return.
//
// Complexity:
//   - Time O(r*c) (O(r*c log c) for Median), Space O(r*c).
func (t *Table) Result() (Result, error) {
	// Stage 1 (Preconditions)
	if t.data == nil {
		return Result{}, tableErrorf(opResult, ErrMissingData)
	}
	if err := t.check(); err != nil {
		return Result{}, tableErrorf(opResult, err)
	}

	// Stage 2 (Selection)
	sel, err := t.Select()
	if err != nil {
		return Result{}, err
	}
	sub, err := matrix.SelectColumns(t.data, sel.Columns)
	if err != nil {
		return Result{}, tableErrorf(opResult, err)
	}

	// Stage 3 (Reduction)
	reduce, ok := reducers[t.cfg.Reduction]
	if !ok {
		return Result{}, tableErrorf(opResult, fmt.Errorf("%v: %w", t.cfg.Reduction, ErrInvalidConfig))
	}
	out, err := reduce(sub)
	if err != nil {
		return Result{}, tableErrorf(opResult, err)
	}

	// Stage 4 (Dispersion)
	var spread *matrix.Dense
	if disperse, ok := dispersers[t.cfg.Dispersion]; ok && t.cfg.Selection != SingleSample {
		if spread, err = disperse(sub); err != nil {
			return Result{}, tableErrorf(opResult, err)
		}
	}

	// Stage 5 (Names)
	names, err := t.Label(sel)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Matrix:    out,
		Names:     names,
		RowLabels: append([]string(nil), t.rows...),
		Errors:    spread,
		Group:     sel.Group,
	}, nil
}
