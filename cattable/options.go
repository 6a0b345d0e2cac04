// SPDX-License-Identifier: MIT
// Package: cattable
//
// options.go — configuration record and functional options.
//
// Contract (strict):
//   • Every Table owns its own Config value; nothing is shared between tables.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Table methods themselves MUST NOT panic.
//   • A Config built by hand is checked by Validate when it reaches a table,
//     so out-of-range values surface as ErrInvalidConfig instead.
//
// AI-Hints:
//   • WithSingleSample and WithMetadataGroup set the selection mode together
//     with its parameters; WithPopulation clears them.
//   • The naming policy is two options: WithNaming for the transform/basis pair
//     and WithNameDelimiters for Split's delimiter and token position.

package cattable

import "fmt"

const (
	// DefaultDelimiter separates name tokens for Split and SplitAndClean.
	DefaultDelimiter = "_"

	// DefaultPosition is the token taken by Split (first token).
	DefaultPosition = 0
)

// Config is the full mode configuration of a Table.
type Config struct {
	Selection   SelectionMode
	Reduction   ReductionMode
	Dispersion  DispersionMode
	MatchTarget string // sample id or metadata value for SingleSample/MetadataGroup
	Field       string // metadata field for MetadataGroup
	Transform   NameTransform
	Basis       NameBasis
	NameValue   string // replacement used by Substitute
	Delimiter   string // split delimiter
	Position    int    // split token; negative counts from the end
}

// DefaultConfig returns Population / Identity / NoDispersion with Raw names by
// sample identity, split on "_" at token 0.
func DefaultConfig() Config {
	return Config{
		Selection:  Population,
		Reduction:  Identity,
		Dispersion: NoDispersion,
		Transform:  Raw,
		Basis:      ByIdentity,
		Delimiter:  DefaultDelimiter,
		Position:   DefaultPosition,
	}
}

// Validate checks that every mode is in range and the delimiter is usable.
// Selection parameters are checked against data by the table, not here.
//
// Errors: ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !c.Selection.valid():
		return fmt.Errorf("%v: %w", c.Selection, ErrInvalidConfig)
	case !c.Reduction.valid():
		return fmt.Errorf("%v: %w", c.Reduction, ErrInvalidConfig)
	case !c.Dispersion.valid():
		return fmt.Errorf("%v: %w", c.Dispersion, ErrInvalidConfig)
	case !c.Transform.valid():
		return fmt.Errorf("%v: %w", c.Transform, ErrInvalidConfig)
	case !c.Basis.valid():
		return fmt.Errorf("%v: %w", c.Basis, ErrInvalidConfig)
	case c.Delimiter == "":
		return fmt.Errorf("empty delimiter: %w", ErrInvalidConfig)
	}

	return nil
}

// Option customizes a Config before it is validated against the table.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(dst *Config) {
		*dst = c
	}
}

// WithPopulation selects every sample and clears any match target and field.
func WithPopulation() Option {
	return func(c *Config) {
		c.Selection = Population
		c.MatchTarget, c.Field = "", ""
	}
}

// WithSingleSample selects the sample named id. Panics on an empty id.
func WithSingleSample(id string) Option {
	if id == "" {
		panic("cattable: WithSingleSample(\"\")")
	}
	return func(c *Config) {
		c.Selection = SingleSample
		c.MatchTarget = id
	}
}

// WithMetadataGroup selects the samples whose field value equals target, or
// equals the field value of the sample named target. Panics on empty arguments.
func WithMetadataGroup(field, target string) Option {
	if field == "" || target == "" {
		panic("cattable: WithMetadataGroup requires field and target")
	}
	return func(c *Config) {
		c.Selection = MetadataGroup
		c.Field, c.MatchTarget = field, target
	}
}

// WithReduction sets the reduction mode. Panics on an unknown mode.
func WithReduction(m ReductionMode) Option {
	if !m.valid() {
		panic(fmt.Sprintf("cattable: WithReduction(%v)", m))
	}
	return func(c *Config) {
		c.Reduction = m
	}
}

// WithDispersion sets the dispersion mode. Panics on an unknown mode.
func WithDispersion(m DispersionMode) Option {
	if !m.valid() {
		panic(fmt.Sprintf("cattable: WithDispersion(%v)", m))
	}
	return func(c *Config) {
		c.Dispersion = m
	}
}

// WithNaming sets the naming policy. Panics on an unknown transform or basis.
func WithNaming(t NameTransform, b NameBasis) Option {
	if !t.valid() || !b.valid() {
		panic(fmt.Sprintf("cattable: WithNaming(%v, %v)", t, b))
	}
	return func(c *Config) {
		c.Transform, c.Basis = t, b
	}
}

// WithNameValue sets the replacement used by the Substitute transform.
func WithNameValue(s string) Option {
	return func(c *Config) {
		c.NameValue = s
	}
}

// WithNameDelimiters sets the split delimiter and token position.
// Panics on an empty delimiter.
func WithNameDelimiters(delimiter string, position int) Option {
	if delimiter == "" {
		panic("cattable: WithNameDelimiters(\"\")")
	}
	return func(c *Config) {
		c.Delimiter, c.Position = delimiter, position
	}
}
