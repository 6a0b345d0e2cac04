// SPDX-License-Identifier: MIT
// Package: render
//
// options.go — chart options.
//
// Contract:
//   • Constructors panic on meaningless geometry (non-positive size,
//     empty y-range). Palette names are user input and are checked when the
//     chart is drawn, returning ErrUnknownPalette.

package render

import "fmt"

const (
	// DefaultWidth and DefaultHeight are the SVG canvas size in pixels.
	DefaultWidth  = 640
	DefaultHeight = 400

	// DefaultPalette colors series and categories unless WithPalette is used.
	DefaultPalette = "Spectral"
)

type options struct {
	title          string
	xLabel, yLabel string
	yMin, yMax     float64
	yFixed         bool
	width, height  int
	palette        string
	showError      bool
}

func gather(opts []Option, xLabel, yLabel string) options {
	o := options{
		xLabel:    xLabel,
		yLabel:    yLabel,
		width:     DefaultWidth,
		height:    DefaultHeight,
		palette:   DefaultPalette,
		showError: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Option customizes a chart.
type Option func(*options)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithAxisLabels overrides the x and y axis labels.
func WithAxisLabels(x, y string) Option {
	return func(o *options) { o.xLabel, o.yLabel = x, y }
}

// WithYRange fixes the y axis to [lo, hi]. Panics unless lo < hi.
func WithYRange(lo, hi float64) Option {
	if !(lo < hi) {
		panic(fmt.Sprintf("render: WithYRange(%g, %g)", lo, hi))
	}
	return func(o *options) {
		o.yMin, o.yMax, o.yFixed = lo, hi, true
	}
}

// WithSize sets the canvas size in pixels. Panics on non-positive sizes.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%d, %d)", width, height))
	}
	return func(o *options) { o.width, o.height = width, height }
}

// WithPalette selects a named palette (see Palette).
func WithPalette(name string) Option {
	return func(o *options) { o.palette = name }
}

// WithoutError hides the error band even when the result carries errors.
func WithoutError() Option {
	return func(o *options) { o.showError = false }
}
