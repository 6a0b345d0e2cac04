// SPDX-License-Identifier: MIT

package arrange_test

import (
	"testing"

	"github.com/katalvlaran/taxasum/arrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubTable(t *testing.T) {
	t.Parallel()

	out, err := arrange.SubTable(phylumDense(t), samples, []string{"B_Allen", "F_Smythe"})
	require.NoError(t, err)
	assert.Equal(t, gatherColumns([]int{3, 4}), out.RowsSlice())

	out, err = arrange.SubTable(phylumDense(t), samples, []string{"J_COBB", "J_COBB"})
	require.NoError(t, err)
	assert.Equal(t, gatherColumns([]int{5, 5}), out.RowsSlice())
}

func TestSubTable_Errors(t *testing.T) {
	t.Parallel()

	_, err := arrange.SubTable(phylumDense(t), []string{"B_Allen", "F_Smythe"}, []string{"B_Allen"})
	require.ErrorIs(t, err, arrange.ErrShapeConflict)

	_, err = arrange.SubTable(phylumDense(t), samples, nil)
	require.ErrorIs(t, err, arrange.ErrEmptyTarget)

	_, err = arrange.SubTable(phylumDense(t), samples, []string{"Cat", "Dog"})
	require.ErrorIs(t, err, arrange.ErrNoMatch)
}

func TestOtherRow(t *testing.T) {
	t.Parallel()

	src := phylumRows()
	out, labels, err := arrange.OtherRow(phylumDense(t), phyla, 3)
	require.NoError(t, err)
	assert.Equal(t, append(append([]string(nil), phyla[:3]...), arrange.OtherLabel), labels)
	require.Equal(t, 4, out.Rows())

	rows := out.RowsSlice()
	for i := 0; i < 3; i++ {
		assert.Equal(t, src[i], rows[i])
	}
	for j := range samples {
		var want float64
		for i := 3; i < len(src); i++ {
			want += src[i][j]
		}
		assert.InDelta(t, want, rows[3][j], 1e-12)
	}
}

func TestOtherRow_Edges(t *testing.T) {
	t.Parallel()

	out, labels, err := arrange.OtherRow(phylumDense(t), phyla, 8)
	require.NoError(t, err)
	assert.Equal(t, phyla, labels)
	assert.Equal(t, phylumRows(), out.RowsSlice())

	out, labels, err = arrange.OtherRow(phylumDense(t), phyla, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{arrange.OtherLabel}, labels)
	for _, v := range out.RowsSlice()[0] {
		assert.InDelta(t, 1.0, v, 1e-3, "fixture columns are relative abundances")
	}

	_, _, err = arrange.OtherRow(phylumDense(t), phyla, -1)
	require.ErrorIs(t, err, arrange.ErrOutOfRange)

	_, _, err = arrange.OtherRow(phylumDense(t), phyla[:2], 1)
	require.ErrorIs(t, err, arrange.ErrShapeConflict)
}
