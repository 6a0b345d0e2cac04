// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/taxasum/internal/config"
	"github.com/katalvlaran/taxasum/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// bind maps flag names onto viper keys; a flag set on the command line
// overrides the config file and the environment.
func bind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		_ = v.BindPFlag(key, fs.Lookup(flag))
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "taxasum",
		Short: "taxasum - category abundance summaries",
		Long: `taxasum reads a category-by-sample abundance table, selects a cohort of
samples (the whole population, one sample, or a metadata group), reduces it
per category (mean, median, sum, presence, count) and prints or plots the
labelled result.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "Path to a YAML, TOML or JSON config file (default ./taxasum.*)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringP("abundance", "i", "", "Abundance table (tab-separated, optionally .gz)")
	pf.StringP("mapping", "m", "", "QIIME mapping file (#SampleID header)")
	pf.String("metadata", "", "Sample metadata as YAML, TOML or JSON")

	pf.String("selection", "population", "Sample selection: population, sample or group")
	pf.StringP("target", "t", "", "Sample id or group value for sample/group selection")
	pf.StringP("field", "f", "", "Metadata field for group selection and category naming")
	pf.StringP("reduction", "r", "identity", "Reduction: identity, mean, median, sum, presence or count")
	pf.StringP("dispersion", "e", "none", "Dispersion: none, stddev or stderr")
	pf.String("transform", "raw", "Name transform: raw, split, substitute, clean or split-clean")
	pf.String("basis", "identity", "Name basis: identity, category or description")
	pf.String("name-value", "", "Replacement name for the substitute transform")
	pf.String("delimiter", "_", "Delimiter for the split transforms")
	pf.Int("position", 0, "Token taken by the split transforms; negative counts from the end")
	pf.String("sort", "retain", "Category order: abundance, alpha or retain")
	pf.String("first", "", "Category pinned to the top of the output")
	pf.Int("keep", 0, "Categories kept before merging the rest into \"Other\"; 0 keeps all")

	bind(a.v, pf, map[string]string{
		"log-level":  "log.level",
		"abundance":  "input.abundance",
		"mapping":    "input.mapping",
		"metadata":   "input.metadata",
		"selection":  "summary.selection",
		"target":     "summary.target",
		"field":      "summary.field",
		"reduction":  "summary.reduction",
		"dispersion": "summary.dispersion",
		"transform":  "summary.transform",
		"basis":      "summary.basis",
		"name-value": "summary.nameValue",
		"delimiter":  "summary.delimiter",
		"position":   "summary.position",
		"sort":       "summary.sortCategories",
		"first":      "summary.firstCategory",
		"keep":       "summary.keep",
	})

	root.AddCommand(newSummarizeCmd(a), newPlotCmd(a), &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taxasum v%s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	return root
}

// setup loads the configuration and installs the global logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err = logger.Init(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Encoding:    cfg.Log.Encoding,
		OutputPaths: []string{"stderr"},
	}); err != nil {
		return err
	}
	logger.Get().Debug("configuration loaded",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.String("selection", cfg.Summary.Selection),
		zap.String("reduction", cfg.Summary.Reduction))

	return nil
}

// commandContext tags ctx with the running subcommand and input file.
func (a *app) commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, logger.CommandKey, cmd.Name())

	return context.WithValue(ctx, logger.InputKey, a.cfg.Input.Abundance)
}
