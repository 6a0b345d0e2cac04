// SPDX-License-Identifier: MIT

// Package metadata models per-sample annotations: a two-level mapping from
// sample id to field name to value, such as a QIIME mapping file with
// columns SEX, AGE or BODY_SITE.
//
// Validate is the gate used before any grouping happens. It enforces that
// every entry shares one field set, that every declared sample is present
// and that a requested field exists. SampleGroups then partitions samples by
// the value they carry for a field, preserving the caller's sample order.
package metadata
