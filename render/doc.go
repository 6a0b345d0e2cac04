// SPDX-License-Identifier: MIT

// Package render draws cattable results.
//
// Charts are built with go-gg: the result is flattened into a long-format
// table (one row per category × output column), handed to gg.NewPlot, and
// written as SVG.
//
//	Trace    one line+point series per output column across categories,
//	         with a translucent error band when the result carries errors
//	Profile  stacked abundance: each output column is a block whose bands
//	         are the cumulative category values (a stacked-bar stand-in)
//	Table    plain-text table of the result through table.Fprint
//
// Colors come from named ColorBrewer palettes (see Palette) and are cycled
// when a chart needs more colors than the palette holds.
package render
