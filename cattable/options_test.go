// SPDX-License-Identifier: MIT

package cattable_test

import (
	"testing"

	"github.com/katalvlaran/taxasum/cattable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cattable.WithSingleSample("") })
	assert.Panics(t, func() { cattable.WithMetadataGroup("", "male") })
	assert.Panics(t, func() { cattable.WithMetadataGroup("SEX", "") })
	assert.Panics(t, func() { cattable.WithReduction(cattable.ReductionMode(9)) })
	assert.Panics(t, func() { cattable.WithDispersion(cattable.DispersionMode(-1)) })
	assert.Panics(t, func() { cattable.WithNaming(cattable.NameTransform(7), cattable.ByIdentity) })
	assert.Panics(t, func() { cattable.WithNaming(cattable.Raw, cattable.NameBasis(7)) })
	assert.Panics(t, func() { cattable.WithNameDelimiters("", 0) })
}

func TestOptions_PopulationClearsTarget(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, cattable.WithMetadataGroup("SEX", "male"), cattable.WithPopulation())
	cfg := tbl.Config()
	assert.Equal(t, cattable.Population, cfg.Selection)
	assert.Empty(t, cfg.MatchTarget)
	assert.Empty(t, cfg.Field)
}

func TestParseModes(t *testing.T) {
	t.Parallel()

	sel, err := cattable.ParseSelection(" Group ")
	require.NoError(t, err)
	assert.Equal(t, cattable.MetadataGroup, sel)

	red, err := cattable.ParseReduction("count")
	require.NoError(t, err)
	assert.Equal(t, cattable.PresenceCount, red)

	disp, err := cattable.ParseDispersion("STDERR")
	require.NoError(t, err)
	assert.Equal(t, cattable.StdErr, disp)

	tr, err := cattable.ParseTransform("split-clean")
	require.NoError(t, err)
	assert.Equal(t, cattable.SplitAndClean, tr)

	basis, err := cattable.ParseBasis("category")
	require.NoError(t, err)
	assert.Equal(t, cattable.ByCategoryValue, basis)

	_, err = cattable.ParseReduction("mode")
	require.ErrorIs(t, err, cattable.ErrUnknownMode)
	_, err = cattable.ParseSelection("")
	require.ErrorIs(t, err, cattable.ErrUnknownMode)
}

func TestModeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sample", cattable.SingleSample.String())
	assert.Equal(t, "median", cattable.Median.String())
	assert.Equal(t, "stddev", cattable.StdDev.String())
	assert.Equal(t, "clean", cattable.Clean.String())
	assert.Equal(t, "description", cattable.ByDescription.String())
	assert.Equal(t, "ReductionMode(9)", cattable.ReductionMode(9).String())
	assert.True(t, cattable.Sum.Collapses())
	assert.False(t, cattable.Presence.Collapses())
	assert.Equal(t, "Counts", cattable.PresenceCount.Description())
	assert.Empty(t, cattable.Identity.Description())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, cattable.DefaultConfig().Validate())
	bad := cattable.DefaultConfig()
	bad.Basis = 5
	require.ErrorIs(t, bad.Validate(), cattable.ErrInvalidConfig)
}
