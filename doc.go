// Package taxasum is your in-memory toolkit for summarizing category
// abundance tables: rows are categories (taxa, phyla, genes), columns are
// samples, and a summary is one labelled column per cohort.
//
// 🚀 What is taxasum?
//
//	A small, validated pipeline that brings together:
//		• Cohorts: the whole population, a single sample, or a metadata group
//		• Reductions: identity, mean, median, sum, presence, presence count
//		• Dispersion: population standard deviation and standard error
//		• Naming: raw, split, substitute, clean and split-clean labels
//		• Ordering: abundance, alphabetical, retained or custom category order
//		• Charts: SVG traces and stacked profiles
//
// ✨ Why choose taxasum?
//
//   - Beginner-friendly – one Table, one Result, explicit modes
//   - Rock-solid guarantees – every mutation validated, failed ones roll back
//   - No surprises – sentinel errors matched with errors.Is, no panics in algorithms
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — dense row-major storage, shape validators and row reductions
//	metadata/   — per-sample annotations, schema checks and group buckets
//	cattable/   — the Table entity: selection, reduction and naming
//	arrange/    — fuzzy matching, sample/category ordering, "Other" rows
//	render/     — SVG traces and profiles, aligned text tables
//	cmd/taxasum — the command-line front end
//
// Quick example:
//
//	          S1    S2    S3
//	p__A     0.1   0.3   0.2
//	p__B     0.9   0.7   0.8
//
// summarized by mean over the population gives
//
//	          Population
//	p__A      0.2
//	p__B      0.8
//
//	go get github.com/katalvlaran/taxasum/cattable
package taxasum
