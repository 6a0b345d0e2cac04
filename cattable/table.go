// SPDX-License-Identifier: MIT
// Package: cattable
//
// table.go — the Table entity, its constructor and its mutators.
//
// Contract:
//   • Every mutation is validated before it is committed; a failed mutation
//     leaves the table exactly as it was.
//   • Data, row labels and sample labels travel together: all three or none.
//   • The table never aliases caller slices or matrices.

package cattable

import (
	"fmt"

	"github.com/katalvlaran/taxasum/matrix"
	"github.com/katalvlaran/taxasum/metadata"
)

// Operation tags for unified error wrapping.
const (
	opNew               = "New"
	opSetData           = "SetData"
	opSetMetadata       = "SetMetadata"
	opSetNameDelimiters = "SetNameDelimiters"
	opConfigure         = "Configure"
	opCheck             = "check"
)

// Table is a category-by-sample abundance table together with the mode
// configuration that decides how it is summarized.
//
// A Table is not safe for concurrent mutation; callers sharing one must
// serialize access.
type Table struct {
	data    *matrix.Dense     // rows = categories, cols = samples; nil until supplied
	rows    []string          // category labels, len == data.Rows()
	samples []string          // sample labels, unique, len == data.Cols()
	index   map[string]int    // sample label -> column
	meta    metadata.Metadata // optional per-sample annotations
	cfg     Config
}

// New BUILDS a validated Table.
// Implementation:
//   - Stage 1: Resolve the configuration from DefaultConfig and opts.
//   - Stage 2: Canonicalize data through matrix.ValidateDataArray (unless
//     data and both label slices are all nil).
//   - Stage 3: Check metadata and selection parameters against the data.
//
// Inputs:
//   - data: []float64, []int, [][]float64, [][]int or matrix.Matrix; nil to
//     supply data later with SetData.
//   - rowLabels: category labels, one per row.
//   - sampleLabels: unique sample labels, one per column.
//   - meta: optional per-sample metadata.
//
// Errors:
//   - ErrTypeConflict / ErrShapeConflict from data validation.
//   - ErrSchemaConflict / ErrMissingSample / ErrUnknownField / ErrTypeConflict
//     from metadata validation.
//   - ErrInvalidSelection when the selection parameters cannot resolve.
//   - ErrInvalidConfig for out-of-range modes supplied through WithConfig.
//
// Complexity:
//   - Time O(r*c + S*F), Space O(r*c).
func New(data any, rowLabels, sampleLabels []string, meta metadata.Metadata, opts ...Option) (*Table, error) {
	// Stage 1 (Config)
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Table{cfg: cfg, meta: cloneMeta(meta)}

	// Stage 2 (Data)
	if err := t.loadData(data, rowLabels, sampleLabels); err != nil {
		return nil, tableErrorf(opNew, err)
	}

	// Stage 3 (Consistency)
	if err := t.check(); err != nil {
		return nil, tableErrorf(opNew, err)
	}

	return t, nil
}

// loadData canonicalizes and stores data with its labels.
func (t *Table) loadData(data any, rowLabels, sampleLabels []string) error {
	if data == nil && rowLabels == nil && sampleLabels == nil {
		t.data, t.rows, t.samples, t.index = nil, nil, nil, nil
		return nil
	}
	d, err := matrix.ValidateDataArray(data, rowLabels, sampleLabels)
	if err != nil {
		return err
	}
	// A 1-D vector is a single sample; keep only its label.
	samples := sampleLabels
	if d.Cols() == 1 && len(samples) != 1 {
		if len(samples) == 0 {
			return fmt.Errorf("one sample label required: %w", ErrShapeConflict)
		}
		samples = samples[:1]
	}
	index := make(map[string]int, len(samples))
	for j, id := range samples {
		if _, dup := index[id]; dup {
			return fmt.Errorf("duplicate sample label %q: %w", id, ErrShapeConflict)
		}
		index[id] = j
	}

	t.data = d
	t.rows = append([]string(nil), rowLabels...)
	t.samples = append([]string(nil), samples...)
	t.index = index

	return nil
}

// check VALIDATES the combined state.
// Implementation:
//   - Stage 1: Config ranges.
//   - Stage 2: Metadata against samples and the configured field.
//   - Stage 3: Selection parameters against samples and metadata groups.
//
// Behavior highlights:
//   - Checks that need absent inputs (no data, no metadata) are deferred to
//     Select, mirroring the "supply later" lifecycle.
func (t *Table) check() error {
	// Stage 1 (Config)
	if err := t.cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opCheck, err)
	}

	// Stage 2 (Metadata)
	if t.meta != nil {
		if err := metadata.Validate(t.meta, t.samples, t.cfg.Field); err != nil {
			return fmt.Errorf("%s: %w", opCheck, err)
		}
	}

	// Stage 3 (Selection)
	switch t.cfg.Selection {
	case SingleSample:
		if t.cfg.MatchTarget == "" {
			return fmt.Errorf("%s: sample selection without a sample id: %w", opCheck, ErrInvalidSelection)
		}
		if t.samples != nil {
			if _, ok := t.index[t.cfg.MatchTarget]; !ok {
				return fmt.Errorf("%s: sample %q not in table: %w", opCheck, t.cfg.MatchTarget, ErrInvalidSelection)
			}
		}
	case MetadataGroup:
		if t.cfg.MatchTarget == "" || t.cfg.Field == "" {
			return fmt.Errorf("%s: group selection needs a field and a target: %w", opCheck, ErrInvalidSelection)
		}
		if t.meta != nil && t.samples != nil {
			if _, _, err := t.resolveGroup(); err != nil {
				return fmt.Errorf("%s: %w", opCheck, err)
			}
		}
	}

	return nil
}

// commit validates next and, on success, replaces t with it.
func (t *Table) commit(op string, next *Table) error {
	if err := next.check(); err != nil {
		return tableErrorf(op, err)
	}
	*t = *next

	return nil
}

// SetData replaces the data matrix and both label sequences together.
// Passing nil for all three clears the data.
//
// Errors: as New; on error the table is unchanged.
func (t *Table) SetData(data any, sampleLabels, rowLabels []string) error {
	next := *t
	if err := next.loadData(data, rowLabels, sampleLabels); err != nil {
		return tableErrorf(opSetData, err)
	}

	return t.commit(opSetData, &next)
}

// SetMetadata replaces the metadata (nil removes it).
//
// Errors: metadata validation and selection errors; on error the table is unchanged.
func (t *Table) SetMetadata(meta metadata.Metadata) error {
	next := *t
	next.meta = cloneMeta(meta)

	return t.commit(opSetMetadata, &next)
}

// SetNameDelimiters sets the split delimiter and token position.
//
// Errors: ErrInvalidConfig for an empty delimiter; on error the table is unchanged.
func (t *Table) SetNameDelimiters(delimiter string, position int) error {
	next := *t
	next.cfg.Delimiter, next.cfg.Position = delimiter, position

	return t.commit(opSetNameDelimiters, &next)
}

// Configure applies opts on top of the current configuration.
//
// Errors: as New; on error the table is unchanged.
func (t *Table) Configure(opts ...Option) error {
	next := *t
	for _, opt := range opts {
		opt(&next.cfg)
	}

	return t.commit(opConfigure, &next)
}

// Config returns a copy of the current configuration.
func (t *Table) Config() Config { return t.cfg }

// HasData reports whether a data matrix has been supplied.
func (t *Table) HasData() bool { return t.data != nil }

// Data returns a copy of the data matrix, or nil when none was supplied.
func (t *Table) Data() *matrix.Dense {
	if t.data == nil {
		return nil
	}
	d, _ := matrix.AsDense(t.data) // non-nil Dense cannot fail

	return d
}

// RowLabels returns a copy of the category labels.
func (t *Table) RowLabels() []string { return append([]string(nil), t.rows...) }

// SampleLabels returns a copy of the sample labels.
func (t *Table) SampleLabels() []string { return append([]string(nil), t.samples...) }

// Metadata returns a copy of the metadata, or nil.
func (t *Table) Metadata() metadata.Metadata { return cloneMeta(t.meta) }

// cloneMeta deep-copies meta, keeping nil entries nil so validation still sees them.
func cloneMeta(meta metadata.Metadata) metadata.Metadata {
	if meta == nil {
		return nil
	}
	out := make(metadata.Metadata, len(meta))
	for id, fields := range meta {
		if fields == nil {
			out[id] = nil
			continue
		}
		cp := make(map[string]string, len(fields))
		for k, v := range fields {
			cp[k] = v
		}
		out[id] = cp
	}

	return out
}
