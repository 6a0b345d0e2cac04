// SPDX-License-Identifier: MIT

// Package cattable summarizes a category-by-sample abundance table.
//
// A Table holds a data matrix (rows are categories such as taxa, columns are
// samples), its labels, optional per-sample metadata and a Config. Result
// runs the pipeline
//
//	Select   -> which samples: Population, SingleSample or MetadataGroup
//	reduce   -> Identity, Mean, Median, Sum, Presence or PresenceCount
//	disperse -> optional StdDev or StdErr per row (never for one sample)
//	Label    -> column names from a NameTransform and a NameBasis
//
// and returns a Result: the reduced matrix, its column names, the row labels
// and the dispersion column (nil when none).
//
// Quick start:
//
//	t, err := cattable.New(data, taxa, samples, meta,
//		cattable.WithMetadataGroup("SEX", "female"),
//		cattable.WithReduction(cattable.Mean),
//		cattable.WithDispersion(cattable.StdErr),
//	)
//	if err != nil {
//		return err
//	}
//	res, err := t.Result()
//
// Errors are sentinels matched with errors.Is. The collaborator sentinels
// ErrTypeConflict, ErrShapeConflict, ErrSchemaConflict, ErrMissingSample and
// ErrUnknownField are re-exported here.
package cattable
