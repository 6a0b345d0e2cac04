// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/katalvlaran/taxasum/cattable"
)

// Output formats accepted by WriteResult.
const (
	FormatJSON = "json"
	FormatTSV  = "tsv"
)

// resultDoc is the JSON shape of a cattable.Result.
type resultDoc struct {
	Group      string      `json:"group"`
	Names      []string    `json:"names"`
	Categories []string    `json:"categories"`
	Values     [][]float64 `json:"values"`
	Errors     []float64   `json:"errors,omitempty"`
}

// WriteResult writes res to w as JSON or TSV. The TSV header is "category",
// the output names, then "error" when res carries dispersion.
//
// Errors: ErrUnsupportedFormat, ErrMalformed for a result without a matrix,
// or the writer's error.
func WriteResult(w io.Writer, res cattable.Result, format string) error {
	if res.Matrix == nil {
		return fmt.Errorf("write result: no matrix: %w", ErrMalformed)
	}
	var errs []float64
	if res.Errors != nil {
		var err error
		if errs, err = res.Errors.Column(0); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	values := res.Matrix.RowsSlice()

	switch format {
	case FormatJSON:
		body, err := gojson.MarshalIndent(resultDoc{
			Group:      res.Group,
			Names:      res.Names,
			Categories: res.RowLabels,
			Values:     values,
			Errors:     errs,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if _, err = w.Write(append(body, '\n')); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil

	case FormatTSV:
		cw := csv.NewWriter(w)
		cw.Comma = '\t'
		header := append([]string{"category"}, res.Names...)
		if errs != nil {
			header = append(header, "error")
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		for i, row := range values {
			rec := make([]string, 0, len(header))
			rec = append(rec, res.RowLabels[i])
			for _, v := range row {
				rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if errs != nil {
				rec = append(rec, strconv.FormatFloat(errs[i], 'g', -1, 64))
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("write result: %q: %w", format, ErrUnsupportedFormat)
	}
}
