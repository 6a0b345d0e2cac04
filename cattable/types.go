// SPDX-License-Identifier: MIT

package cattable

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/taxasum/matrix"
)

// PopulationLabel is the group label of a whole-table selection.
const PopulationLabel = "Population"

// SelectionMode decides which sample columns take part in a summary.
//
//   - Population    — every sample.
//   - SingleSample  — the sample named by the match target.
//   - MetadataGroup — every sample sharing a metadata value with the target.
type SelectionMode int

const (
	Population SelectionMode = iota
	SingleSample
	MetadataGroup
)

// ReductionMode decides how selected columns are collapsed per row.
// Identity and Presence keep one column per sample; the others collapse to one.
type ReductionMode int

const (
	Identity ReductionMode = iota
	Mean
	Median
	Sum
	Presence
	PresenceCount
)

// DispersionMode selects the optional per-row spread statistic.
type DispersionMode int

const (
	NoDispersion DispersionMode = iota
	StdDev
	StdErr
)

// NameTransform is the string-cleaning half of the naming policy.
type NameTransform int

const (
	Raw NameTransform = iota
	Split
	Substitute
	Clean
	SplitAndClean
)

// NameBasis picks which string feeds the transform and how many labels result.
type NameBasis int

const (
	ByIdentity NameBasis = iota
	ByCategoryValue
	ByDescription
)

var (
	selectionNames  = [...]string{"population", "sample", "group"}
	reductionNames  = [...]string{"identity", "mean", "median", "sum", "presence", "count"}
	dispersionNames = [...]string{"none", "stddev", "stderr"}
	transformNames  = [...]string{"raw", "split", "substitute", "clean", "split-clean"}
	basisNames      = [...]string{"identity", "category", "description"}

	// descriptions label collapsed results under ByDescription.
	descriptions = map[ReductionMode]string{
		Mean:          "Mean",
		Median:        "Median",
		Sum:           "Sum",
		PresenceCount: "Counts",
	}
)

func (m SelectionMode) valid() bool  { return m >= Population && m <= MetadataGroup }
func (m ReductionMode) valid() bool  { return m >= Identity && m <= PresenceCount }
func (m DispersionMode) valid() bool { return m >= NoDispersion && m <= StdErr }
func (t NameTransform) valid() bool  { return t >= Raw && t <= SplitAndClean }
func (b NameBasis) valid() bool      { return b >= ByIdentity && b <= ByDescription }

func (m SelectionMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
	return selectionNames[m]
}

func (m ReductionMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("ReductionMode(%d)", int(m))
	}
	return reductionNames[m]
}

func (m DispersionMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("DispersionMode(%d)", int(m))
	}
	return dispersionNames[m]
}

func (t NameTransform) String() string {
	if !t.valid() {
		return fmt.Sprintf("NameTransform(%d)", int(t))
	}
	return transformNames[t]
}

func (b NameBasis) String() string {
	if !b.valid() {
		return fmt.Sprintf("NameBasis(%d)", int(b))
	}
	return basisNames[b]
}

// Collapses reports whether the mode reduces the selection to one column.
func (m ReductionMode) Collapses() bool {
	return m != Identity && m != Presence
}

// Description returns the descriptive label of a collapsing mode ("" otherwise).
func (m ReductionMode) Description() string {
	return descriptions[m]
}

// parseName matches s case-insensitively against names.
func parseName(kind, s string, names []string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownMode)
}

// ParseSelection converts "population", "sample" or "group".
func ParseSelection(s string) (SelectionMode, error) {
	i, err := parseName("selection", s, selectionNames[:])
	return SelectionMode(i), err
}

// ParseReduction converts "identity", "mean", "median", "sum", "presence" or "count".
func ParseReduction(s string) (ReductionMode, error) {
	i, err := parseName("reduction", s, reductionNames[:])
	return ReductionMode(i), err
}

// ParseDispersion converts "none", "stddev" or "stderr".
func ParseDispersion(s string) (DispersionMode, error) {
	i, err := parseName("dispersion", s, dispersionNames[:])
	return DispersionMode(i), err
}

// ParseTransform converts "raw", "split", "substitute", "clean" or "split-clean".
func ParseTransform(s string) (NameTransform, error) {
	i, err := parseName("transform", s, transformNames[:])
	return NameTransform(i), err
}

// ParseBasis converts "identity", "category" or "description".
func ParseBasis(s string) (NameBasis, error) {
	i, err := parseName("basis", s, basisNames[:])
	return NameBasis(i), err
}

// Selection is a resolved subset of samples.
type Selection struct {
	// Samples lists the selected ids in table order.
	Samples []string
	// Columns holds the matrix column of each entry of Samples.
	Columns []int
	// Group is the human-facing cohort label ("Population", a sample id or a
	// metadata value).
	Group string
}

// Result is the summarized output handed to renderers.
type Result struct {
	// Matrix is (rows × 1) for collapsing reductions, (rows × len(selection))
	// otherwise.
	Matrix *matrix.Dense
	// Names labels each column of Matrix.
	Names []string
	// RowLabels passes the table's category labels through.
	RowLabels []string
	// Errors is the (rows × 1) dispersion column, nil when none was computed.
	Errors *matrix.Dense
	// Group is the resolved cohort label.
	Group string
}
