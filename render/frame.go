// SPDX-License-Identifier: MIT
// Package: render
//
// frame.go — flattening a cattable.Result into go-gg tables and scales.

package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/katalvlaran/taxasum/cattable"
)

// Long-format column names shared by the charts.
const (
	colX        = "x"
	colY        = "y"
	colUpper    = "upper"
	colLower    = "lower"
	colSeries   = "series"
	colCategory = "category"
)

// errorBandAlpha is the opacity of the fill under each trace.
const errorBandAlpha = 0x50

// checkResult verifies that res can be drawn.
func checkResult(res cattable.Result) error {
	switch {
	case res.Matrix == nil:
		return fmt.Errorf("no matrix: %w", ErrInvalidResult)
	case len(res.Names) != res.Matrix.Cols():
		return fmt.Errorf("%d names for %d columns: %w", len(res.Names), res.Matrix.Cols(), ErrInvalidResult)
	case len(res.RowLabels) != res.Matrix.Rows():
		return fmt.Errorf("%d row labels for %d rows: %w", len(res.RowLabels), res.Matrix.Rows(), ErrInvalidResult)
	case res.Errors != nil && res.Errors.Rows() != res.Matrix.Rows():
		return fmt.Errorf("%d error rows for %d rows: %w", res.Errors.Rows(), res.Matrix.Rows(), ErrInvalidResult)
	}

	return nil
}

// categoryAxis returns the x position of every row: the row labels when
// all of them are numbers, the row index otherwise.
func categoryAxis(labels []string) []float64 {
	xs := make([]float64, len(labels))
	numeric := true
	for i, l := range labels {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			numeric = false
			break
		}
		xs[i] = v
	}
	if !numeric {
		for i := range xs {
			xs[i] = float64(i)
		}
	}

	return xs
}

// traceFrame holds the long-format trace data. The upper and lower columns
// exist only when band is set.
type traceFrame struct {
	tab    *table.Table
	band   bool
	extent []float64 // every drawn y value, for the default range
}

func newTraceFrame(res cattable.Result, showError bool) (traceFrame, error) {
	r, c := res.Matrix.Rows(), res.Matrix.Cols()
	pos := categoryAxis(res.RowLabels)
	band := showError && res.Errors != nil

	n := r * c
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	series := make([]string, 0, n)
	cats := make([]string, 0, n)
	var upper, lower []float64
	if band {
		upper = make([]float64, 0, n)
		lower = make([]float64, 0, n)
	}

	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			v, err := res.Matrix.At(i, j)
			if err != nil {
				return traceFrame{}, err
			}
			xs = append(xs, pos[i])
			ys = append(ys, v)
			series = append(series, res.Names[j])
			cats = append(cats, res.RowLabels[i])
			if band {
				e, err := res.Errors.At(i, 0)
				if err != nil {
					return traceFrame{}, err
				}
				upper = append(upper, v+e)
				lower = append(lower, v-e)
			}
		}
	}

	b := new(table.Builder).
		Add(colX, xs).
		Add(colY, ys).
		Add(colSeries, series).
		Add(colCategory, cats)
	extent := ys
	if band {
		b = b.Add(colUpper, upper).Add(colLower, lower)
		extent = append(append(append([]float64(nil), ys...), upper...), lower...)
	}

	return traceFrame{tab: b.Done(), band: band, extent: extent}, nil
}

// profileFrame stacks each output column into cumulative category bands.
// Column j spans x in [j, j+1] so that single-column results still have width.
func newProfileFrame(res cattable.Result) (*table.Table, []float64, error) {
	r, c := res.Matrix.Rows(), res.Matrix.Cols()
	n := 2 * r * c
	xs := make([]float64, 0, n)
	cats := make([]string, 0, n)
	upper := make([]float64, 0, n)
	lower := make([]float64, 0, n)
	tops := make([]float64, 0, c)

	var i, j int
	for j = 0; j < c; j++ {
		acc := 0.0
		for i = 0; i < r; i++ {
			v, err := res.Matrix.At(i, j)
			if err != nil {
				return nil, nil, err
			}
			for _, x := range [2]float64{float64(j), float64(j + 1)} {
				xs = append(xs, x)
				cats = append(cats, res.RowLabels[i])
				lower = append(lower, acc)
				upper = append(upper, acc+v)
			}
			acc += v
		}
		tops = append(tops, acc)
	}

	tab := new(table.Builder).
		Add(colX, xs).
		Add(colCategory, cats).
		Add(colUpper, upper).
		Add(colLower, lower).
		Done()

	return tab, tops, nil
}

// yScale includes zero and spans the data bounds unless the range is fixed.
func yScale(o options, extent []float64) gg.ContinuousScaler {
	s := gg.NewLinearScaler()
	if o.yFixed {
		return s.SetMin(o.yMin).SetMax(o.yMax)
	}
	s = s.Include(0)
	if len(extent) > 0 {
		lo, hi := stats.Bounds(extent)
		s = s.Include(lo).Include(hi)
	}

	return s
}

// colorScale maps a string column onto n colors of the named palette.
func colorScale(name string, n int, alpha uint8) (gg.Scaler, error) {
	cs, err := Palette(name, n)
	if err != nil {
		return nil, err
	}
	if alpha != 0xff {
		cs = translucent(cs, alpha)
	}
	s := gg.NewOrdinalScale()
	s.Ranger(gg.NewColorRanger(cs))

	return s, nil
}

// decorate applies title and axis labels.
func decorate(p *gg.Plot, o options) {
	if o.title != "" {
		p.Add(gg.Title(o.title))
	}
	if o.xLabel != "" {
		p.Add(gg.AxisLabel("x", o.xLabel))
	}
	if o.yLabel != "" {
		p.Add(gg.AxisLabel("y", o.yLabel))
	}
}

// distinct counts the distinct strings in s.
func distinct(s []string) int {
	seen := make(map[string]struct{}, len(s))
	for _, v := range s {
		seen[v] = struct{}{}
	}

	return len(seen)
}
