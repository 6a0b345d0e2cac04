// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"io"

	"github.com/katalvlaran/taxasum/arrange"
	"github.com/katalvlaran/taxasum/cattable"
	"github.com/katalvlaran/taxasum/internal/config"
	"github.com/katalvlaran/taxasum/internal/loader"
	"github.com/katalvlaran/taxasum/internal/logger"
	"github.com/katalvlaran/taxasum/matrix"
	"github.com/katalvlaran/taxasum/metadata"
	"github.com/katalvlaran/taxasum/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errNoInput is returned when no abundance table was configured.
var errNoInput = errors.New("taxasum: no abundance table (use --abundance or input.abundance)")

func newSummarizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize the abundance table and print the result",
		Long: `Summarize selects samples, reduces them per category, orders the categories
and prints the labelled result as an aligned table, JSON or TSV.

Example:
  taxasum summarize -i otu_table.txt.gz -m mapping.txt \
    --selection group -f SITE -t gut -r mean -e stderr --sort abundance --keep 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.commandContext(cmd)
			res, err := summarize(ctx, a.cfg)
			if err != nil {
				return err
			}

			return writeSummary(cmd.OutOrStdout(), res, a.cfg.Summary.Format)
		},
	}
	cmd.Flags().String("format", "text", "Output format: text, json or tsv")
	bind(a.v, cmd.Flags(), map[string]string{"format": "summary.format"})

	return cmd
}

func writeSummary(w io.Writer, res cattable.Result, format string) error {
	if format == "text" {
		return render.Table(w, res)
	}

	return loader.WriteResult(w, res, format)
}

// summarize runs the full pipeline: load, build the table, reduce, then
// order and trim the categories.
func summarize(ctx context.Context, cfg *config.Config) (cattable.Result, error) {
	log := logger.WithContext(ctx)
	if cfg.Input.Abundance == "" {
		return cattable.Result{}, errNoInput
	}

	ab, err := loader.ReadAbundance(cfg.Input.Abundance)
	if err != nil {
		return cattable.Result{}, err
	}
	log.Info("abundance table loaded",
		zap.Int("categories", len(ab.Categories)),
		zap.Int("samples", len(ab.Samples)))

	meta, err := readMetadata(cfg.Input)
	if err != nil {
		return cattable.Result{}, err
	}
	if meta != nil {
		log.Info("metadata loaded", zap.Int("samples", len(meta)), zap.Strings("fields", meta.Fields()))
	}

	opts, err := cfg.Summary.Options()
	if err != nil {
		return cattable.Result{}, err
	}
	tbl, err := cattable.New(ab.Rows, ab.Categories, ab.Samples, meta, opts...)
	if err != nil {
		return cattable.Result{}, err
	}
	res, err := tbl.Result()
	if err != nil {
		return cattable.Result{}, err
	}
	log.Debug("table reduced",
		zap.String("group", res.Group),
		zap.Strings("names", res.Names),
		zap.Bool("dispersion", res.Errors != nil))

	return arrangeResult(log, res, cfg.Summary)
}

// readMetadata prefers a mapping file over a metadata document; with neither
// the table is built without metadata.
func readMetadata(in config.InputConfig) (metadata.Metadata, error) {
	switch {
	case in.Mapping != "":
		return loader.ReadMapping(in.Mapping)
	case in.Metadata != "":
		return loader.ReadMetadata(in.Metadata)
	default:
		return nil, nil
	}
}

// arrangeResult orders the categories of res and merges the tail into an
// "Other" row when s.Keep is set. The dispersion column follows the category
// order and is dropped once rows are merged.
func arrangeResult(log *zap.Logger, res cattable.Result, s config.SummaryConfig) (cattable.Result, error) {
	sorted, rows, perm, err := arrange.SortCategories(res.Matrix, res.RowLabels, s.ArrangeOptions()...)
	if err != nil {
		return cattable.Result{}, err
	}
	if res.Errors != nil {
		if res.Errors, err = matrix.SelectRows(res.Errors, perm); err != nil {
			return cattable.Result{}, err
		}
	}
	res.Matrix, res.RowLabels = sorted, rows

	if s.Keep > 0 && s.Keep < len(rows) {
		if res.Matrix, res.RowLabels, err = arrange.OtherRow(res.Matrix, res.RowLabels, s.Keep); err != nil {
			return cattable.Result{}, err
		}
		if res.Errors != nil {
			log.Info("dispersion dropped after merging categories", zap.Int("keep", s.Keep))
			res.Errors = nil
		}
	}

	return res, nil
}
