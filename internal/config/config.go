// SPDX-License-Identifier: MIT

// Package config loads taxasum settings from a config file, TAXASUM_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/taxasum/arrange"
	"github.com/katalvlaran/taxasum/cattable"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides: TAXASUM_SUMMARY_REDUCTION.
const EnvPrefix = "TAXASUM"

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full taxasum configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Input   InputConfig   `mapstructure:"input"`
	Summary SummaryConfig `mapstructure:"summary"`
	Plot    PlotConfig    `mapstructure:"plot"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Encoding    string `mapstructure:"encoding"`
	Development bool   `mapstructure:"development"`
}

// InputConfig names the files a run reads.
type InputConfig struct {
	Abundance string `mapstructure:"abundance"` // TSV, optionally gzipped
	Mapping   string `mapstructure:"mapping"`   // #SampleID mapping file
	Metadata  string `mapstructure:"metadata"`  // YAML, TOML or JSON metadata
}

// SummaryConfig holds the table modes as strings, plus output ordering.
type SummaryConfig struct {
	Selection  string `mapstructure:"selection"`
	Target     string `mapstructure:"target"`
	Field      string `mapstructure:"field"`
	Reduction  string `mapstructure:"reduction"`
	Dispersion string `mapstructure:"dispersion"`
	Transform  string `mapstructure:"transform"`
	Basis      string `mapstructure:"basis"`
	NameValue  string `mapstructure:"nameValue"`
	Delimiter  string `mapstructure:"delimiter"`
	Position   int    `mapstructure:"position"`

	SortCategories string `mapstructure:"sortCategories"` // abundance, alpha or retain
	FirstCategory  string `mapstructure:"firstCategory"`
	Keep           int    `mapstructure:"keep"`   // categories kept before "Other"; 0 keeps all
	Format         string `mapstructure:"format"` // text, json or tsv
}

// PlotConfig configures the plot subcommand.
type PlotConfig struct {
	Kind      string    `mapstructure:"kind"` // trace or profile
	Output    string    `mapstructure:"output"`
	Title     string    `mapstructure:"title"`
	Palette   string    `mapstructure:"palette"`
	Width     int       `mapstructure:"width"`
	Height    int       `mapstructure:"height"`
	ShowError bool      `mapstructure:"showError"`
	YRange    []float64 `mapstructure:"yRange"`
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Unwrap lets callers match any ConfigError with ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

var categoryMethods = map[string]arrange.Method{
	"abundance": arrange.Abundance,
	"alpha":     arrange.Alpha,
	"retain":    arrange.Retain,
}

// New returns a viper instance with every default set and environment
// overrides enabled. Flags are bound on it before Load is called.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", false)

	v.SetDefault("input.abundance", "")
	v.SetDefault("input.mapping", "")
	v.SetDefault("input.metadata", "")

	v.SetDefault("summary.selection", cattable.Population.String())
	v.SetDefault("summary.target", "")
	v.SetDefault("summary.field", "")
	v.SetDefault("summary.reduction", cattable.Identity.String())
	v.SetDefault("summary.dispersion", cattable.NoDispersion.String())
	v.SetDefault("summary.transform", cattable.Raw.String())
	v.SetDefault("summary.basis", cattable.ByIdentity.String())
	v.SetDefault("summary.nameValue", "")
	v.SetDefault("summary.delimiter", cattable.DefaultDelimiter)
	v.SetDefault("summary.position", cattable.DefaultPosition)
	v.SetDefault("summary.sortCategories", arrange.Retain.String())
	v.SetDefault("summary.firstCategory", "")
	v.SetDefault("summary.keep", 0)
	v.SetDefault("summary.format", "text")

	v.SetDefault("plot.kind", "trace")
	v.SetDefault("plot.output", "taxasum.svg")
	v.SetDefault("plot.title", "")
	v.SetDefault("plot.palette", "Spectral")
	v.SetDefault("plot.width", 640)
	v.SetDefault("plot.height", 400)
	v.SetDefault("plot.showError", true)
	v.SetDefault("plot.yRange", []float64{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (or ./taxasum.{yaml,toml,json} when path is empty) into v,
// unmarshals and validates the result. A missing default file is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("taxasum")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated setting and numeric range.
func (c *Config) Validate() error {
	if _, err := c.Summary.TableConfig(); err != nil {
		return err
	}
	if _, ok := categoryMethods[strings.ToLower(c.Summary.SortCategories)]; !ok {
		return &ConfigError{Field: "summary.sortCategories", Message: fmt.Sprintf("unknown method %q", c.Summary.SortCategories)}
	}
	if c.Summary.Keep < 0 {
		return &ConfigError{Field: "summary.keep", Message: "must be >= 0"}
	}
	switch c.Summary.Format {
	case "text", "json", "tsv":
	default:
		return &ConfigError{Field: "summary.format", Message: fmt.Sprintf("unknown format %q", c.Summary.Format)}
	}
	switch c.Plot.Kind {
	case "trace", "profile":
	default:
		return &ConfigError{Field: "plot.kind", Message: fmt.Sprintf("unknown kind %q", c.Plot.Kind)}
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return &ConfigError{Field: "plot.width/height", Message: "must be > 0"}
	}
	if n := len(c.Plot.YRange); n != 0 && (n != 2 || !(c.Plot.YRange[0] < c.Plot.YRange[1])) {
		return &ConfigError{Field: "plot.yRange", Message: "must be [min, max] with min < max"}
	}

	return nil
}

// TableConfig converts the string modes into a cattable.Config.
func (s SummaryConfig) TableConfig() (cattable.Config, error) {
	cfg := cattable.DefaultConfig()
	var err error
	if cfg.Selection, err = cattable.ParseSelection(s.Selection); err != nil {
		return cfg, &ConfigError{Field: "summary.selection", Message: err.Error()}
	}
	if cfg.Reduction, err = cattable.ParseReduction(s.Reduction); err != nil {
		return cfg, &ConfigError{Field: "summary.reduction", Message: err.Error()}
	}
	if cfg.Dispersion, err = cattable.ParseDispersion(s.Dispersion); err != nil {
		return cfg, &ConfigError{Field: "summary.dispersion", Message: err.Error()}
	}
	if cfg.Transform, err = cattable.ParseTransform(s.Transform); err != nil {
		return cfg, &ConfigError{Field: "summary.transform", Message: err.Error()}
	}
	if cfg.Basis, err = cattable.ParseBasis(s.Basis); err != nil {
		return cfg, &ConfigError{Field: "summary.basis", Message: err.Error()}
	}

	switch cfg.Selection {
	case cattable.SingleSample:
		if s.Target == "" {
			return cfg, &ConfigError{Field: "summary.target", Message: "required for sample selection"}
		}
	case cattable.MetadataGroup:
		if s.Target == "" || s.Field == "" {
			return cfg, &ConfigError{Field: "summary.target/field", Message: "both required for group selection"}
		}
	}
	if cfg.Selection != cattable.Population {
		cfg.MatchTarget = s.Target
	}
	if cfg.Selection == cattable.MetadataGroup || cfg.Basis == cattable.ByCategoryValue {
		cfg.Field = s.Field
	}
	cfg.NameValue = s.NameValue
	cfg.Delimiter, cfg.Position = s.Delimiter, s.Position
	if err = cfg.Validate(); err != nil {
		return cfg, &ConfigError{Field: "summary.delimiter", Message: err.Error()}
	}

	return cfg, nil
}

// Options returns the table options equivalent to the summary settings.
func (s SummaryConfig) Options() ([]cattable.Option, error) {
	cfg, err := s.TableConfig()
	if err != nil {
		return nil, err
	}

	return []cattable.Option{cattable.WithConfig(cfg)}, nil
}

// ArrangeOptions returns the category ordering options.
func (s SummaryConfig) ArrangeOptions() []arrange.Option {
	opts := []arrange.Option{arrange.WithMethod(categoryMethods[strings.ToLower(s.SortCategories)])}
	if s.FirstCategory != "" {
		opts = append(opts, arrange.FirstCategory(s.FirstCategory))
	}

	return opts
}
