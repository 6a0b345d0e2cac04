// SPDX-License-Identifier: MIT

package arrange

import (
	"fmt"
	"sort"
	"strings"
)

const (
	opFuzzyMatch       = "FuzzyMatch"
	opCategoryPosition = "CategoryPosition"
)

// LevelSeparator splits a taxonomy string into levels.
const LevelSeparator = ";"

func arrangeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// FuzzyMatch returns the index of the candidate that contains target.
//
// A candidate equal to target wins outright (first one if repeated);
// otherwise exactly one candidate may contain target as a substring.
//
// Errors: ErrNoMatch (empty target or no candidate), ErrAmbiguousMatch.
func FuzzyMatch(target string, candidates []string) (int, error) {
	if target == "" {
		return -1, arrangeErrorf(opFuzzyMatch, fmt.Errorf("empty target: %w", ErrNoMatch))
	}
	found := -1
	hits := 0
	for i, c := range candidates {
		if c == target {
			return i, nil
		}
		if strings.Contains(c, target) {
			if hits == 0 {
				found = i
			}
			hits++
		}
	}
	switch hits {
	case 0:
		return -1, arrangeErrorf(opFuzzyMatch, fmt.Errorf("%q: %w", target, ErrNoMatch))
	case 1:
		return found, nil
	default:
		return -1, arrangeErrorf(opFuzzyMatch, fmt.Errorf("%q matches %d candidates: %w", target, hits, ErrAmbiguousMatch))
	}
}

// CategoryPosition fuzzy-matches target against one taxonomy level of each
// row label ("k__Bacteria; p__Firmicutes" has levels 0 and 1). A negative
// level selects the last level; labels lacking the level never match.
func CategoryPosition(target string, rowLabels []string, level int) (int, error) {
	tokens := make([]string, len(rowLabels))
	for i, label := range rowLabels {
		parts := strings.Split(label, LevelSeparator)
		k := level
		if k < 0 {
			k = len(parts) - 1
		}
		if k < len(parts) {
			tokens[i] = strings.TrimSpace(parts[k])
		}
	}
	i, err := FuzzyMatch(target, tokens)
	if err != nil {
		return -1, arrangeErrorf(opCategoryPosition, err)
	}

	return i, nil
}

// SortAlphabetically returns ids in stable lexical order together with the
// permutation: sorted[k] == ids[perm[k]].
func SortAlphabetically(ids []string) ([]string, []int) {
	perm := identityPerm(len(ids))
	sort.SliceStable(perm, func(a, b int) bool { return ids[perm[a]] < ids[perm[b]] })

	return permute(ids, perm), perm
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func permute(s []string, perm []int) []string {
	out := make([]string, len(perm))
	for k, i := range perm {
		out[k] = s[i]
	}

	return out
}
