// SPDX-License-Identifier: MIT

// Package arrange orders and trims abundance tables before they are drawn.
//
// It works on the same (categories × samples) layout as the matrix package
// and always returns fresh copies together with the permutation it applied,
// so callers can reorder any parallel slice (colors, error bars) the same way.
//
// Matching:
//
//	FuzzyMatch        unique substring match, exact match wins
//	CategoryPosition  FuzzyMatch on one ";"-separated taxonomy level
//
// Ordering:
//
//	SortAlphabetically  stable lexical order of labels
//	SortSamples         BySamples (default) or ByRow(i), optional Reverse
//	SortCategories      Abundance (default), Alpha, Retain or Custom(...),
//	                    optional FirstCategory(name) and Reverse
//
// Trimming:
//
//	SubTable  columns of the named samples
//	OtherRow  keep the first k categories, fold the rest into "Other"
package arrange
