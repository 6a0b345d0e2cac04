// SPDX-License-Identifier: MIT

package cattable_test

import (
	"testing"

	"github.com/katalvlaran/taxasum/cattable"
	"github.com/katalvlaran/taxasum/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	tbl, err := cattable.New(phylumRows(), phyla, samples, nil)
	require.NoError(t, err)
	assert.Equal(t, cattable.DefaultConfig(), tbl.Config())
	assert.True(t, tbl.HasData())
	assert.Equal(t, samples, tbl.SampleLabels())
	assert.Equal(t, phyla, tbl.RowLabels())
	assert.Nil(t, tbl.Metadata())
	assert.Equal(t, 8, tbl.Data().Cols())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	inconsistent := heroMeta()
	inconsistent["B_Allen"] = map[string]string{"SEX": "male"}
	nilEntry := heroMeta()
	nilEntry["F_Smythe"] = nil
	missing := heroMeta()
	delete(missing, "S_Summers")
	ragged := phylumRows()
	ragged[3] = ragged[3][:5]

	tests := []struct {
		name    string
		data    any
		rows    []string
		samples []string
		meta    metadata.Metadata
		opts    []cattable.Option
		wantErr error
	}{
		{"data without labels", phylumRows(), nil, nil, nil, nil, cattable.ErrTypeConflict},
		{"labels without data", nil, phyla, samples, nil, nil, cattable.ErrTypeConflict},
		{"ragged data", ragged, phyla, samples, nil, nil, cattable.ErrShapeConflict},
		{"too few samples", phylumRows(), phyla, samples[:7], nil, nil, cattable.ErrShapeConflict},
		{"duplicate samples", phylumRows(), phyla, append(samples[:7:7], "A_Stark"), nil, nil, cattable.ErrShapeConflict},
		{"inconsistent metadata", phylumRows(), phyla, samples, inconsistent, nil, cattable.ErrSchemaConflict},
		{"nil metadata entry", phylumRows(), phyla, samples, nilEntry, nil, cattable.ErrTypeConflict},
		{"metadata missing sample", phylumRows(), phyla, samples, missing, nil, cattable.ErrMissingSample},
		{"unknown field", phylumRows(), phyla, samples, heroMeta(),
			[]cattable.Option{cattable.WithMetadataGroup("PLANET", "Earth")}, cattable.ErrUnknownField},
		{"unknown sample", phylumRows(), phyla, samples, nil,
			[]cattable.Option{cattable.WithSingleSample("P_Parker")}, cattable.ErrInvalidSelection},
		{"unknown group", phylumRows(), phyla, samples, heroMeta(),
			[]cattable.Option{cattable.WithMetadataGroup("SEX", "nonbinary")}, cattable.ErrInvalidSelection},
		{"bad config", phylumRows(), phyla, samples, nil,
			[]cattable.Option{cattable.WithConfig(cattable.Config{Reduction: 42, Delimiter: "_"})}, cattable.ErrInvalidConfig},
		{"empty delimiter", phylumRows(), phyla, samples, nil,
			[]cattable.Option{cattable.WithConfig(cattable.Config{})}, cattable.ErrInvalidConfig},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tbl, err := cattable.New(tc.data, tc.rows, tc.samples, tc.meta, tc.opts...)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, tbl)
		})
	}
}

func TestNew_MetadataTypeConflictKeepsBothSentinels(t *testing.T) {
	t.Parallel()

	meta := heroMeta()
	meta["J_COBB"] = nil
	_, err := cattable.New(phylumRows(), phyla, samples, meta)
	require.ErrorIs(t, err, cattable.ErrTypeConflict)
	require.ErrorIs(t, err, metadata.ErrTypeConflict)
}

func TestNew_WithoutDataThenSetData(t *testing.T) {
	t.Parallel()

	tbl, err := cattable.New(nil, nil, nil, nil, cattable.WithSingleSample("A_Stark"))
	require.NoError(t, err, "selection parameters are checked once data arrives")
	assert.False(t, tbl.HasData())
	assert.Nil(t, tbl.Data())

	_, err = tbl.Result()
	require.ErrorIs(t, err, cattable.ErrMissingData)
	_, err = tbl.Select()
	require.ErrorIs(t, err, cattable.ErrMissingData)

	require.NoError(t, tbl.SetData(phylumRows(), samples, phyla))
	res, err := tbl.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"A_Stark"}, res.Names)
}

func TestNew_OneDimensionalData(t *testing.T) {
	t.Parallel()

	tbl, err := cattable.New(fixtureColumn(2), phyla, []string{"Z.Washburne"}, nil)
	require.NoError(t, err)
	res, err := tbl.Result()
	require.NoError(t, err)
	require.Equal(t, 8, res.Matrix.Rows())
	require.Equal(t, 1, res.Matrix.Cols())
	assert.Equal(t, []string{"Z.Washburne"}, res.Names)
	sliceClose(t, column(t, res.Matrix, 0), fixtureColumn(2), 0)
}

func TestMutators_FailureLeavesTableUnchanged(t *testing.T) {
	t.Parallel()

	tbl, err := cattable.New(phylumRows(), phyla, samples, heroMeta(),
		cattable.WithMetadataGroup("SEX", "female"))
	require.NoError(t, err)
	before := tbl.Config()

	ragged := phylumRows()
	ragged[0] = ragged[0][:2]
	require.ErrorIs(t, tbl.SetData(ragged, samples, phyla), cattable.ErrShapeConflict)
	assert.Equal(t, samples, tbl.SampleLabels())
	assert.Equal(t, 8, tbl.Data().Cols())

	missing := heroMeta()
	delete(missing, "A_Stark")
	require.ErrorIs(t, tbl.SetMetadata(missing), cattable.ErrMissingSample)
	assert.Equal(t, heroMeta(), tbl.Metadata())

	require.ErrorIs(t, tbl.SetNameDelimiters("", 1), cattable.ErrInvalidConfig)
	require.ErrorIs(t, tbl.Configure(cattable.WithSingleSample("P_Parker")), cattable.ErrInvalidSelection)
	assert.Equal(t, before, tbl.Config())

	// Dropping the metadata while a group selection is configured is allowed;
	// the selection itself then fails.
	require.NoError(t, tbl.SetMetadata(nil))
	_, err = tbl.Result()
	require.ErrorIs(t, err, cattable.ErrInvalidSelection)
}

func TestMutators_Success(t *testing.T) {
	t.Parallel()

	tbl, err := cattable.New(phylumRows(), phyla, samples, nil)
	require.NoError(t, err)

	require.NoError(t, tbl.SetNameDelimiters(".", 1))
	assert.Equal(t, ".", tbl.Config().Delimiter)
	assert.Equal(t, 1, tbl.Config().Position)

	require.NoError(t, tbl.SetMetadata(heroMeta()))
	require.NoError(t, tbl.Configure(cattable.WithMetadataGroup("VERSE", "DC"), cattable.WithReduction(cattable.Sum)))
	res, err := tbl.Result()
	require.NoError(t, err)
	assert.Equal(t, "DC", res.Group)

	require.NoError(t, tbl.SetData(nil, nil, nil))
	assert.False(t, tbl.HasData())
}

func TestTable_DoesNotAliasInputs(t *testing.T) {
	t.Parallel()

	rows := phylumRows()
	labels := append([]string(nil), samples...)
	meta := heroMeta()
	tbl, err := cattable.New(rows, phyla, labels, meta)
	require.NoError(t, err)

	rows[0][0] = 42
	labels[0] = "Tony"
	meta["A_Stark"]["SEX"] = "robot"

	v, err := tbl.Data().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.4738, v)
	assert.Equal(t, "A_Stark", tbl.SampleLabels()[0])
	assert.Equal(t, "male", tbl.Metadata()["A_Stark"]["SEX"])
}
