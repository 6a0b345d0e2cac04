// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/katalvlaran/taxasum/cattable"
)

const opTable = "Table"

// ErrorColumn names the dispersion column of Table output.
const ErrorColumn = "error"

// errWriter keeps the first write error so table.Fprint output can be checked.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// Table WRITES res as an aligned text table: a category column, one column
// per output name and, when res carries errors, an ErrorColumn.
// Repeated names get a "#k" suffix so every column stays visible.
//
// Errors: ErrInvalidResult, or the writer's error.
func Table(w io.Writer, res cattable.Result) error {
	if err := checkResult(res); err != nil {
		return renderErrorf(opTable, err)
	}

	b := new(table.Builder).Add(colCategory, append([]string(nil), res.RowLabels...))
	seen := make(map[string]int, len(res.Names)+2)
	seen[colCategory], seen[ErrorColumn] = 1, 1
	for j, name := range res.Names {
		col, err := res.Matrix.Column(j)
		if err != nil {
			return renderErrorf(opTable, err)
		}
		b = b.Add(uniqueName(seen, name), col)
	}
	if res.Errors != nil {
		col, err := res.Errors.Column(0)
		if err != nil {
			return renderErrorf(opTable, err)
		}
		b = b.Add(ErrorColumn, col)
	}

	ew := &errWriter{w: w}
	table.Fprint(ew, b.Done())
	if ew.err != nil {
		return renderErrorf(opTable, ew.err)
	}

	return nil
}

// uniqueName returns name, or name#k for the smallest k >= 2 not yet
// emitted, and records the result in seen.
func uniqueName(seen map[string]int, name string) string {
	candidate := name
	for k := seen[name] + 1; seen[candidate] > 0; k++ {
		candidate = fmt.Sprintf("%s#%d", name, k)
	}
	if candidate != name {
		seen[name]++
	}
	seen[candidate]++

	return candidate
}
