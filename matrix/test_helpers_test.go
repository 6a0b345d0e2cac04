// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Share the 8×8 phylum-by-sample abundance fixture across test files.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/taxasum/matrix"
)

// epsFixture is the tolerance for expectations rounded to six decimals.
const epsFixture = 1e-6

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[i*c+j]).
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := d.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// columnOf reads column j of any Matrix.
func columnOf(t *testing.T, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		out[i] = MustAt(t, m, i, j)
	}

	return out
}

// CompareClose asserts equal shapes and |a-b| ≤ eps for every cell.
func CompareClose(t *testing.T, a, b matrix.Matrix, eps float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > eps {
				t.Fatalf("(%d,%d): %g vs %g (eps=%g)", i, j, av, bv, eps)
			}
		}
	}
}

// sliceClose asserts equal length and |got-want| ≤ eps element-wise.
func sliceClose(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("[%d]: got %g want %g (eps=%g)", i, got[i], want[i], eps)
		}
	}
}

// phylumRows returns the 8 phyla × 8 samples abundance fixture.
func phylumRows() [][]float64 {
	return [][]float64{
		{0.4738, 0.5646, 0.6382, 0.6170, 0.5180, 0.5609, 0.6557, 0.5105},
		{0.3755, 0.3670, 0.2232, 0.3114, 0.3991, 0.3434, 0.2122, 0.2694},
		{0.0801, 0.0099, 0.0135, 0.0330, 0.0821, 0.0135, 0.0675, 0.0872},
		{0.0511, 0.0448, 0.0239, 0.0000, 0.0000, 0.0365, 0.0344, 0.0376},
		{0.0159, 0.0000, 0.0249, 0.0000, 0.0000, 0.0085, 0.0025, 0.0000},
		{0.0036, 0.0137, 0.0000, 0.0200, 0.0000, 0.0065, 0.0041, 0.0072},
		{0.0000, 0.0000, 0.0089, 0.0081, 0.0008, 0.0036, 0.0055, 0.0038},
		{0.0000, 0.0000, 0.0676, 0.0105, 0.0000, 0.0270, 0.0181, 0.0842},
	}
}

// phylumDense returns the fixture as a canonical *Dense.
func phylumDense(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.ValidateDataArray(phylumRows(), phyla, samples)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	return d
}

var (
	samples = []string{"A_Stark", "N_Romanov", "Z.Washburne", "B_Allen", "F_Smythe", "J_COBB", "C_Xavier", "S_Summers"}
	phyla   = []string{
		"k__Bacteria; p__Firmicutes", "k__Bacteria; p__Bacteroidetes",
		"k__Bacteria; p__Proteobacteria", "k__Bacteria; p__Actinobacteria",
		"k__Bacteria; p__Verrucomicrobia", "k__Bacteria; p__Tenericutes",
		"k__Bacteria; p__Cyanobacteria", "k__Bacteria; p__Fusobacteria",
	}
)
