// SPDX-License-Identifier: MIT

package arrange_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/taxasum/arrange"
	"github.com/katalvlaran/taxasum/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortSamples(t *testing.T) {
	t.Parallel()

	alpha := []int{0, 3, 6, 4, 5, 1, 7, 2}
	alphaRev := slices.Clone(alpha)
	slices.Reverse(alphaRev)
	byRow := []int{1, 2, 5, 3, 6, 0, 4, 7}

	tests := []struct {
		name string
		opts []arrange.Option
		perm []int
	}{
		{"default alphabetical", nil, alpha},
		{"explicit alphabetical", []arrange.Option{arrange.BySamples()}, alpha},
		{"reverse", []arrange.Option{arrange.Reverse()}, alphaRev},
		{"by row stable", []arrange.Option{arrange.ByRow(2)}, byRow},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, ids, perm, err := arrange.SortSamples(phylumDense(t), samples, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.perm, perm)
			assert.Equal(t, labelsAt(samples, tc.perm), ids)
			assert.Equal(t, gatherColumns(tc.perm), out.RowsSlice())
		})
	}
}

func TestSortSamples_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := arrange.SortSamples(phylumDense(t), samples[:3])
	require.ErrorIs(t, err, arrange.ErrShapeConflict)

	_, _, _, err = arrange.SortSamples(phylumDense(t), samples, arrange.ByRow(12))
	require.ErrorIs(t, err, arrange.ErrOutOfRange)

	_, _, _, err = arrange.SortSamples(nil, samples)
	require.ErrorIs(t, err, matrix.ErrTypeConflict)
}

func TestSortCategories(t *testing.T) {
	t.Parallel()

	pinned := []int{2, 0, 1, 3, 7, 5, 4, 6}
	pinnedRev := slices.Clone(pinned)
	slices.Reverse(pinnedRev)

	tests := []struct {
		name string
		opts []arrange.Option
		perm []int
	}{
		{"abundance", nil, []int{0, 1, 2, 3, 7, 5, 4, 6}},
		{"abundance pinned", []arrange.Option{arrange.FirstCategory("Proteobacteria")}, pinned},
		{"abundance pinned reversed", []arrange.Option{arrange.FirstCategory("Proteobacteria"), arrange.Reverse()}, pinnedRev},
		{"alpha pinned", []arrange.Option{arrange.WithMethod(arrange.Alpha), arrange.FirstCategory("Proteobacteria")},
			[]int{2, 3, 1, 6, 0, 7, 5, 4}},
		{"retain pinned", []arrange.Option{arrange.WithMethod(arrange.Retain), arrange.FirstCategory("Proteobacteria")},
			[]int{2, 0, 1, 3, 4, 5, 6, 7}},
		{"custom ignores pin", []arrange.Option{
			arrange.FirstCategory("Fuso"),
			arrange.Custom("Proteo", "Firmicutes", "detes", "Tenericutes", "Actino", "Cyano", "Prot"),
		}, []int{2, 0, 1, 5, 3, 6, 2}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, labels, perm, err := arrange.SortCategories(phylumDense(t), phyla, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.perm, perm)
			assert.Equal(t, labelsAt(phyla, tc.perm), labels)
			assert.Equal(t, gatherRows(tc.perm), out.RowsSlice())
		})
	}
}

func TestSortCategories_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := arrange.SortCategories(phylumDense(t), phyla[:7])
	require.ErrorIs(t, err, arrange.ErrShapeConflict)

	_, _, _, err = arrange.SortCategories(phylumDense(t), phyla, arrange.Custom("Firmicutes", "Bacteria"))
	require.ErrorIs(t, err, arrange.ErrAmbiguousMatch)

	_, _, _, err = arrange.SortCategories(phylumDense(t), phyla, arrange.FirstCategory("Chlamydiae"))
	require.ErrorIs(t, err, arrange.ErrNoMatch)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { arrange.ByRow(-1) })
	assert.Panics(t, func() { arrange.Custom() })
	assert.Panics(t, func() { arrange.FirstCategory("") })
	assert.Panics(t, func() { arrange.WithMethod(arrange.CustomOrder) })
	assert.Equal(t, "alpha", arrange.Alpha.String())
}
