// SPDX-License-Identifier: MIT
// Package: metadata
//
// Purpose:
//   - Validate two-level sample metadata and resolve field-value groups.
//
// Determinism:
//   - Map iteration is never observable: keys are sorted before any
//     order-dependent step, and groups follow the caller's sample order.

package metadata

import (
	"fmt"
	"sort"
)

// Operation tags for unified error wrapping.
const (
	opValidate     = "Validate"
	opFromRaw      = "FromRaw"
	opGroupValues  = "GroupValues"
	opSampleGroups = "SampleGroups"
	opGroupOf      = "GroupOf"
)

// Metadata maps sample id → field name → value.
type Metadata map[string]map[string]string

func metadataErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Validate CHECKS that meta is a consistent two-level mapping.
// Implementation:
//   - Stage 1: meta and each entry must be non-nil mappings.
//   - Stage 2: every entry must carry the reference field set (the entry of
//     the lexicographically first sample).
//   - Stage 3: every id in sampleIDs must be a key of meta.
//   - Stage 4: field, when non-empty, must be part of the field set.
//
// Inputs:
//   - meta: the mapping under test.
//   - sampleIDs: ids that must be present; nil skips the check.
//   - field: field that must exist; "" skips the check.
//
// Errors:
//   - ErrTypeConflict, ErrSchemaConflict, ErrMissingSample, ErrUnknownField,
//     reported in that priority.
//
// Complexity:
//   - Time O(S*F + N) for S samples, F fields and N ids. Space O(S).
func Validate(meta Metadata, sampleIDs []string, field string) error {
	// Stage 1 (Type): the outer mapping and every entry must exist.
	if meta == nil {
		return metadataErrorf(opValidate, ErrTypeConflict)
	}
	keys := sortedKeys(meta)
	for _, id := range keys {
		if meta[id] == nil {
			return metadataErrorf(opValidate, fmt.Errorf("sample %q: %w", id, ErrTypeConflict))
		}
	}

	// Stage 2 (Schema): all field sets equal the reference set.
	var ref map[string]string
	if len(keys) > 0 {
		ref = meta[keys[0]]
	}
	for _, id := range keys {
		if !sameFields(ref, meta[id]) {
			return metadataErrorf(opValidate, fmt.Errorf("samples %q and %q: %w", keys[0], id, ErrSchemaConflict))
		}
	}

	// Stage 3 (Coverage): declared samples must be annotated.
	for _, id := range sampleIDs {
		if _, ok := meta[id]; !ok {
			return metadataErrorf(opValidate, fmt.Errorf("sample %q: %w", id, ErrMissingSample))
		}
	}

	// Stage 4 (Field)
	if field != "" {
		if _, ok := ref[field]; !ok {
			return metadataErrorf(opValidate, fmt.Errorf("field %q: %w", field, ErrUnknownField))
		}
	}

	return nil
}

// sameFields reports whether a and b have identical key sets.
func sameFields(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}

	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// FromRaw converts a loosely typed decoded document (YAML, TOML or JSON)
// into Metadata. Scalar values, and the non-string field names YAML produces
// for keys such as 2020, are rendered with fmt.Sprint.
//
// Errors: ErrTypeConflict when raw is nil or an entry is not a mapping.
func FromRaw(raw map[string]any) (Metadata, error) {
	if raw == nil {
		return nil, metadataErrorf(opFromRaw, ErrTypeConflict)
	}
	meta := make(Metadata, len(raw))
	for _, id := range sortedKeys(raw) {
		switch entry := raw[id].(type) {
		case map[string]string:
			fields := make(map[string]string, len(entry))
			for k, v := range entry {
				fields[k] = v
			}
			meta[id] = fields
		case map[string]any:
			fields := make(map[string]string, len(entry))
			for k, v := range entry {
				fields[k] = fmt.Sprint(v)
			}
			meta[id] = fields
		case map[any]any:
			fields := make(map[string]string, len(entry))
			for k, v := range entry {
				fields[fmt.Sprint(k)] = fmt.Sprint(v)
			}
			meta[id] = fields
		default:
			return nil, metadataErrorf(opFromRaw, fmt.Errorf("sample %q holds %T: %w", id, raw[id], ErrTypeConflict))
		}
	}

	return meta, nil
}

// Fields returns the sorted field names of the schema (empty for empty meta).
func (m Metadata) Fields() []string {
	keys := sortedKeys(m)
	if len(keys) == 0 {
		return []string{}
	}

	return sortedKeys(m[keys[0]])
}

// Samples returns the sorted sample ids.
func (m Metadata) Samples() []string {
	return sortedKeys(m)
}

// GroupValues returns the sorted distinct values of field across all samples.
//
// Errors: Validate errors; ErrUnknownField for a missing field.
// Complexity: O(S log S).
func GroupValues(meta Metadata, field string) ([]string, error) {
	if err := Validate(meta, nil, field); err != nil {
		return nil, metadataErrorf(opGroupValues, err)
	}
	seen := make(map[string]struct{})
	for _, fields := range meta {
		seen[fields[field]] = struct{}{}
	}

	return sortedKeys(seen), nil
}

// GroupOf returns the value sample carries for field.
//
// Errors: Validate errors; ErrMissingSample for an unknown sample.
func GroupOf(meta Metadata, sample, field string) (string, error) {
	if err := Validate(meta, []string{sample}, field); err != nil {
		return "", metadataErrorf(opGroupOf, err)
	}

	return meta[sample][field], nil
}

// SampleGroups PARTITIONS samples by the value each carries for field.
// Implementation:
//   - Stage 1: Validate meta against samples and field.
//   - Stage 2: Walk samples in order, appending each id to its value bucket.
//
// Behavior highlights:
//   - Buckets list ids in the order they appear in samples.
//   - Only values actually present among samples become keys.
//   - The union of all buckets equals samples (with duplicates kept).
//
// Errors:
//   - Validate errors (ErrTypeConflict, ErrSchemaConflict, ErrMissingSample,
//     ErrUnknownField).
//
// Complexity:
//   - Time O(S*F + N), Space O(N).
func SampleGroups(samples []string, meta Metadata, field string) (map[string][]string, error) {
	// Stage 1 (Validate)
	if err := Validate(meta, samples, field); err != nil {
		return nil, metadataErrorf(opSampleGroups, err)
	}

	// Stage 2 (Bucket)
	groups := make(map[string][]string)
	for _, id := range samples {
		value := meta[id][field]
		groups[value] = append(groups[value], id)
	}

	return groups, nil
}
