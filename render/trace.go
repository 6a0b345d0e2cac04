// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/gg"
	"github.com/katalvlaran/taxasum/cattable"
)

const (
	opTrace   = "Trace"
	opProfile = "Profile"
)

func renderErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Trace WRITES an SVG line chart of res.
// Implementation:
//   - Stage 1: Check res and flatten it into (x, y, series) rows.
//   - Stage 2: Bind the palette to the stroke (lines, points) and, when an
//     error band is drawn, to a translucent fill.
//   - Stage 3: Layer band, lines and points; fix the y scale.
//   - Stage 4: Write SVG.
//
// Behavior highlights:
//   - One series per output column, x runs over categories (numeric row
//     labels are used as x values).
//   - The band spans value ± error and is drawn when res.Errors is set,
//     unless WithoutError is given.
//   - The y axis includes 0 and the drawn extent unless WithYRange is given.
//
// Errors:
//   - ErrInvalidResult, ErrUnknownPalette, or the writer's error.
func Trace(w io.Writer, res cattable.Result, opts ...Option) error {
	// Stage 1 (Frame)
	if err := checkResult(res); err != nil {
		return renderErrorf(opTrace, err)
	}
	o := gather(opts, "Category", "Abundance")
	frame, err := newTraceFrame(res, o.showError)
	if err != nil {
		return renderErrorf(opTrace, err)
	}

	// Stage 2 (Colors)
	n := distinct(res.Names)
	stroke, err := colorScale(o.palette, n, 0xff)
	if err != nil {
		return renderErrorf(opTrace, err)
	}

	// Stage 3 (Layers)
	p := gg.NewPlot(frame.tab)
	p.SetScale("stroke", stroke)
	p.SetScale("y", yScale(o, frame.extent))
	if frame.band {
		fill, err := colorScale(o.palette, n, errorBandAlpha)
		if err != nil {
			return renderErrorf(opTrace, err)
		}
		p.SetScale("fill", fill)
		p.Add(gg.LayerArea{X: colX, Upper: colUpper, Lower: colLower, Fill: colSeries})
	}
	p.Add(gg.LayerLines{X: colX, Y: colY, Color: colSeries})
	p.Add(gg.LayerPoints{X: colX, Y: colY, Color: colSeries})
	decorate(p, o)

	// Stage 4 (Write)
	if err = p.WriteSVG(w, o.width, o.height); err != nil {
		return renderErrorf(opTrace, err)
	}

	return nil
}

// Profile WRITES an SVG stacked-abundance chart of res: every output column
// becomes a block of unit width whose bands are the cumulative category
// values, so a relative-abundance column reaches 1.
//
// Errors: ErrInvalidResult, ErrUnknownPalette, or the writer's error.
func Profile(w io.Writer, res cattable.Result, opts ...Option) error {
	if err := checkResult(res); err != nil {
		return renderErrorf(opProfile, err)
	}
	o := gather(opts, "Sample", "Abundance")
	tab, tops, err := newProfileFrame(res)
	if err != nil {
		return renderErrorf(opProfile, err)
	}
	fill, err := colorScale(o.palette, distinct(res.RowLabels), 0xff)
	if err != nil {
		return renderErrorf(opProfile, err)
	}

	p := gg.NewPlot(tab)
	p.SetScale("fill", fill)
	p.SetScale("y", yScale(o, tops))
	p.Add(gg.LayerArea{X: colX, Upper: colUpper, Lower: colLower, Fill: colCategory})
	decorate(p, o)

	if err = p.WriteSVG(w, o.width, o.height); err != nil {
		return renderErrorf(opProfile, err)
	}

	return nil
}
