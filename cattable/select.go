// SPDX-License-Identifier: MIT

package cattable

import (
	"fmt"

	"github.com/katalvlaran/taxasum/metadata"
)

const opSelect = "Select"

// Select RESOLVES the configured selection into an ordered list of samples.
// Implementation:
//   - Stage 1: Require data.
//   - Stage 2: Dispatch on the selection mode:
//     Population takes every sample, SingleSample takes the match target,
//     MetadataGroup takes the bucket of samples sharing a field value.
//   - Stage 3: Map sample ids to matrix columns.
//
// Behavior highlights:
//   - Selected ids always follow the table's sample order.
//   - For MetadataGroup a target that names a group value wins over a sample
//     of the same name.
//
// Errors:
//   - ErrMissingData before data is supplied.
//   - ErrInvalidSelection for an unknown sample, missing metadata, or a
//     target that matches neither a group value nor a sample.
//   - Metadata validation sentinels for MetadataGroup.
//
// Complexity:
//   - Time O(c + S*F), Space O(c).
func (t *Table) Select() (*Selection, error) {
	// Stage 1 (Data)
	if t.data == nil {
		return nil, tableErrorf(opSelect, ErrMissingData)
	}

	// Stage 2 (Dispatch)
	var ids []string
	var group string
	switch t.cfg.Selection {
	case Population:
		ids, group = t.samples, PopulationLabel
	case SingleSample:
		if _, ok := t.index[t.cfg.MatchTarget]; !ok {
			return nil, tableErrorf(opSelect, fmt.Errorf("sample %q: %w", t.cfg.MatchTarget, ErrInvalidSelection))
		}
		ids, group = []string{t.cfg.MatchTarget}, t.cfg.MatchTarget
	case MetadataGroup:
		var err error
		if ids, group, err = t.resolveGroup(); err != nil {
			return nil, tableErrorf(opSelect, err)
		}
	default:
		return nil, tableErrorf(opSelect, fmt.Errorf("%v: %w", t.cfg.Selection, ErrInvalidConfig))
	}

	// Stage 3 (Columns)
	sel := &Selection{
		Samples: append([]string(nil), ids...),
		Columns: make([]int, len(ids)),
		Group:   group,
	}
	for k, id := range ids {
		sel.Columns[k] = t.index[id]
	}

	return sel, nil
}

// resolveGroup finds the metadata bucket named by the match target.
func (t *Table) resolveGroup() ([]string, string, error) {
	if t.cfg.MatchTarget == "" || t.cfg.Field == "" {
		return nil, "", fmt.Errorf("group selection needs a field and a target: %w", ErrInvalidSelection)
	}
	if t.meta == nil {
		return nil, "", fmt.Errorf("group selection without metadata: %w", ErrInvalidSelection)
	}
	groups, err := metadata.SampleGroups(t.samples, t.meta, t.cfg.Field)
	if err != nil {
		return nil, "", err
	}

	// A group value takes precedence over a sample id.
	if members, ok := groups[t.cfg.MatchTarget]; ok {
		return members, t.cfg.MatchTarget, nil
	}
	if _, ok := t.index[t.cfg.MatchTarget]; ok {
		value := t.meta[t.cfg.MatchTarget][t.cfg.Field]
		return groups[value], value, nil
	}

	return nil, "", fmt.Errorf("no sample or %s group named %q: %w", t.cfg.Field, t.cfg.MatchTarget, ErrInvalidSelection)
}
