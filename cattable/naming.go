// SPDX-License-Identifier: MIT

package cattable

import (
	"fmt"
	"strings"
	"unicode"
)

const opLabel = "Label"

// Label DERIVES the output column names for a resolved selection.
// Implementation:
//   - Stage 1: Require a selection.
//   - Stage 2: Pick the basis strings by the table's naming rules.
//   - Stage 3: Apply the name transform to each basis string.
//
// Behavior highlights:
//   - SingleSample: one name from the sample id.
//   - Uncollapsed (Identity/Presence) by identity or description: one name
//     per selected sample id.
//   - Collapsed by identity: one name from the group label.
//   - By category value: the metadata field, once per column when
//     uncollapsed, once when collapsed; "Population" without a group.
//   - Collapsed by description: "Mean", "Median", "Sum" or "Counts".
//
// Errors:
//   - ErrMissingSelection for a nil or unresolved (sample-less) selection.
//   - ErrNameToken when Split finds no token at the configured position.
//
// Determinism:
//   - Same configuration and selection always yield the same names.
func (t *Table) Label(sel *Selection) ([]string, error) {
	// Stage 1 (Precondition)
	if sel == nil || len(sel.Samples) == 0 {
		return nil, tableErrorf(opLabel, ErrMissingSelection)
	}

	// Stage 2 (Basis)
	basis := t.nameBasis(sel)

	// Stage 3 (Transform)
	names := make([]string, len(basis))
	for i, s := range basis {
		name, err := t.transform(s)
		if err != nil {
			return nil, tableErrorf(opLabel, err)
		}
		names[i] = name
	}

	return names, nil
}

// nameBasis returns the raw strings fed to the transform.
func (t *Table) nameBasis(sel *Selection) []string {
	collapsed := t.cfg.Reduction.Collapses()
	switch {
	case t.cfg.Selection == SingleSample:
		return sel.Samples[:1]
	case !collapsed && (t.cfg.Basis == ByIdentity || t.cfg.Basis == ByDescription):
		return sel.Samples
	case t.cfg.Basis == ByIdentity:
		return []string{sel.Group}
	case t.cfg.Basis == ByCategoryValue && !collapsed:
		field := t.cfg.Field
		if field == "" {
			field = PopulationLabel
		}
		return repeat(field, len(sel.Samples))
	case t.cfg.Basis == ByCategoryValue && t.cfg.Selection == MetadataGroup:
		return []string{t.cfg.Field}
	case t.cfg.Basis == ByCategoryValue:
		return []string{PopulationLabel}
	default:
		return []string{t.cfg.Reduction.Description()}
	}
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}

	return out
}

// transform applies the configured NameTransform to s.
func (t *Table) transform(s string) (string, error) {
	switch t.cfg.Transform {
	case Raw:
		return s, nil
	case Split:
		return splitToken(s, t.cfg.Delimiter, t.cfg.Position)
	case Substitute:
		return t.cfg.NameValue, nil
	case Clean:
		return TitleCase(strings.ReplaceAll(s, "_", " ")), nil
	case SplitAndClean:
		tok, err := splitToken(s, t.cfg.Delimiter, t.cfg.Position)
		if err != nil {
			return "", err
		}
		return TitleCase(tok), nil
	default:
		return "", fmt.Errorf("%v: %w", t.cfg.Transform, ErrInvalidConfig)
	}
}

// splitToken returns token pos of s split on delim; negative pos counts from the end.
func splitToken(s, delim string, pos int) (string, error) {
	tokens := strings.Split(s, delim)
	idx := pos
	if idx < 0 {
		idx += len(tokens)
	}
	if idx < 0 || idx >= len(tokens) {
		return "", fmt.Errorf("%q split on %q has %d tokens, position %d: %w", s, delim, len(tokens), pos, ErrNameToken)
	}

	return tokens[idx], nil
}

// TitleCase upper-cases every letter that follows a non-letter and
// lower-cases all other letters: "J COBB" -> "J Cobb", "Z.Washburne" stays.
func TitleCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			sb.WriteRune(unicode.ToTitle(r))
		case isLetter:
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(r)
		}
		prevLetter = isLetter
	}

	return sb.String()
}
