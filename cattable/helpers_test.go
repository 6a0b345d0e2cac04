// SPDX-License-Identifier: MIT

package cattable_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/taxasum/matrix"
	"github.com/katalvlaran/taxasum/metadata"
)

const epsFixture = 1e-6

var (
	samples = []string{"A_Stark", "N_Romanov", "Z.Washburne", "B_Allen", "F_Smythe", "J_COBB", "C_Xavier", "S_Summers"}
	phyla   = []string{
		"k__Bacteria; p__Firmicutes", "k__Bacteria; p__Bacteroidetes",
		"k__Bacteria; p__Proteobacteria", "k__Bacteria; p__Actinobacteria",
		"k__Bacteria; p__Verrucomicrobia", "k__Bacteria; p__Tenericutes",
		"k__Bacteria; p__Cyanobacteria", "k__Bacteria; p__Fusobacteria",
	}
)

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

// heroMeta returns a fresh copy of the superhero mapping fixture.
func heroMeta() metadata.Metadata {
	row := func(sex, verse, age string) map[string]string {
		return map[string]string{"SEX": sex, "VERSE": verse, "AGE": age}
	}

	return metadata.Metadata{
		"A_Stark":     row("male", "Marvel", "40"),
		"N_Romanov":   row("female", "Marvel", "35"),
		"Z.Washburne": row("female", "Wheedon", "38"),
		"B_Allen":     row("male", "DC", "19"),
		"F_Smythe":    row("female", "DC", "22"),
		"J_COBB":      row("male", "Wheedon", "30"),
		"C_Xavier":    row("male", "Marvel", "60"),
		"S_Summers":   row("male", "Marvel", "15"),
	}
}

// column reads column j of m.
func column(t *testing.T, m matrix.Matrix, j int) []float64 {
	t.Helper()
	out := make([]float64, m.Rows())
	for i := range out {
		v, err := m.At(i, j)
		if err != nil {
			t.Fatalf("At(%d,%d): %v", i, j, err)
		}
		out[i] = v
	}

	return out
}

// fixtureColumn returns column j of the raw fixture.
func fixtureColumn(j int) []float64 {
	rows := phylumRows()
	out := make([]float64, len(rows))
	for i := range rows {
		out[i] = rows[i][j]
	}

	return out
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
