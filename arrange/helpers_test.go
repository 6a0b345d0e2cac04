// SPDX-License-Identifier: MIT

package arrange_test

import (
	"testing"

	"github.com/katalvlaran/taxasum/matrix"
	"github.com/stretchr/testify/require"
)

var (
	samples = []string{"A_Stark", "N_Romanov", "Z.Washburne", "B_Allen", "F_Smythe", "J_COBB", "C_Xavier", "S_Summers"}
	phyla   = []string{
		"k__Bacteria; p__Firmicutes", "k__Bacteria; p__Bacteroidetes",
		"k__Bacteria; p__Proteobacteria", "k__Bacteria; p__Actinobacteria",
		"k__Bacteria; p__Verrucomicrobia", "k__Bacteria; p__Tenericutes",
		"k__Bacteria; p__Cyanobacteria", "k__Bacteria; p__Fusobacteria",
	}
)

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

func phylumDense(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.ValidateDataArray(phylumRows(), phyla, samples)
	require.NoError(t, err)

	return d
}

// gatherColumns builds the expected rows of the fixture with columns in perm order.
func gatherColumns(perm []int) [][]float64 {
	src := phylumRows()
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = make([]float64, len(perm))
		for k, j := range perm {
			out[i][k] = row[j]
		}
	}

	return out
}

// gatherRows builds the expected rows of the fixture in perm order.
func gatherRows(perm []int) [][]float64 {
	src := phylumRows()
	out := make([][]float64, len(perm))
	for k, i := range perm {
		out[k] = src[i]
	}

	return out
}

func labelsAt(labels []string, perm []int) []string {
	out := make([]string, len(perm))
	for k, i := range perm {
		out[k] = labels[i]
	}

	return out
}
