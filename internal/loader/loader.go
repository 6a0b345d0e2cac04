// SPDX-License-Identifier: MIT

// Package loader reads abundance tables and sample metadata from disk and
// writes summarized results.
//
// Abundance tables are tab-separated, optionally gzip-compressed:
//
//	# Constructed from biom file
//	#OTU ID	S1	S2	taxonomy
//	k__Bacteria; p__Firmicutes	0.61	0.55	...
//
// Metadata comes either from a QIIME mapping file (header row starts with
// #SampleID) or from a YAML, TOML or JSON document mapping sample id to a
// field/value mapping.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	gojson "github.com/goccy/go-json"
	"github.com/katalvlaran/taxasum/metadata"
	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for file extensions or output
	// formats the loader does not handle.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")

	// ErrMalformed indicates a structurally broken input file.
	ErrMalformed = errors.New("loader: malformed input")
)

const (
	// MappingHeader opens the header row of a mapping file.
	MappingHeader = "#SampleID"

	taxonomyColumn = "taxonomy"
	gzipExt        = ".gz"
)

// Abundance is a parsed abundance table ready for cattable.New.
type Abundance struct {
	Categories []string
	Samples    []string
	Rows       [][]float64
}

// open returns a reader for path, decompressing ".gz" files.
func open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, gzipExt) {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &gzipFile{Reader: zr, f: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}

	return zerr
}

// formatOf returns the lower-case extension of path, ignoring a ".gz" suffix.
func formatOf(path string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSuffix(path, gzipExt)))
}

func tsvReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	return cr
}

// ReadAbundance reads a (possibly gzipped) tab-separated abundance table.
func ReadAbundance(path string) (*Abundance, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("read abundance: %w", err)
	}
	defer rc.Close()

	a, err := ParseAbundance(rc)
	if err != nil {
		return nil, fmt.Errorf("read abundance %s: %w", path, err)
	}

	return a, nil
}

// ParseAbundance parses an abundance table.
//
// Lines starting with "# " before the header are comments; the header's
// first cell (usually "#OTU ID") is ignored and a trailing "taxonomy"
// column is dropped. Every data row must carry one value per sample.
//
// Errors: ErrMalformed for a missing header, short rows or non-numeric values.
func ParseAbundance(r io.Reader) (*Abundance, error) {
	cr := tsvReader(r)
	var header []string
	for header == nil {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil, fmt.Errorf("no header row: %w", ErrMalformed)
		}
		if err != nil {
			return nil, err
		}
		if isBlank(rec) || strings.HasPrefix(rec[0], "# ") {
			continue
		}
		header = rec
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has no samples: %w", ErrMalformed)
	}
	samples := header[1:]
	if strings.EqualFold(strings.TrimSpace(samples[len(samples)-1]), taxonomyColumn) {
		samples = samples[:len(samples)-1]
	}

	a := &Abundance{Samples: trimAll(samples)}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(rec) {
			continue
		}
		if len(rec) < len(samples)+1 {
			return nil, fmt.Errorf("row %q has %d values, want %d: %w", rec[0], len(rec)-1, len(samples), ErrMalformed)
		}
		row := make([]float64, len(samples))
		for j := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[j+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %q sample %q: %v: %w", rec[0], a.Samples[j], err, ErrMalformed)
			}
			row[j] = v
		}
		a.Categories = append(a.Categories, strings.TrimSpace(rec[0]))
		a.Rows = append(a.Rows, row)
	}
	if len(a.Rows) == 0 {
		return nil, fmt.Errorf("no data rows: %w", ErrMalformed)
	}

	return a, nil
}

// ReadMapping reads a QIIME mapping file into Metadata.
func ReadMapping(path string) (metadata.Metadata, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	defer rc.Close()

	meta, err := ParseMapping(rc)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}

	return meta, nil
}

// ParseMapping parses a mapping file: the header row starts with
// MappingHeader, later lines starting with "#" are comments, and every row
// holds a sample id followed by one value per field.
//
// Errors: ErrMalformed for a missing header, short rows or repeated ids.
func ParseMapping(r io.Reader) (metadata.Metadata, error) {
	cr := tsvReader(r)
	var fields []string
	meta := make(metadata.Metadata)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlank(rec) {
			continue
		}
		if fields == nil {
			if strings.TrimSpace(rec[0]) != MappingHeader {
				return nil, fmt.Errorf("first row must start with %s: %w", MappingHeader, ErrMalformed)
			}
			fields = trimAll(rec[1:])
			continue
		}
		if strings.HasPrefix(rec[0], "#") {
			continue
		}
		id := strings.TrimSpace(rec[0])
		if _, dup := meta[id]; dup {
			return nil, fmt.Errorf("sample %q repeated: %w", id, ErrMalformed)
		}
		if len(rec)-1 < len(fields) {
			return nil, fmt.Errorf("sample %q has %d fields, want %d: %w", id, len(rec)-1, len(fields), ErrMalformed)
		}
		entry := make(map[string]string, len(fields))
		for k, f := range fields {
			entry[f] = strings.TrimSpace(rec[k+1])
		}
		meta[id] = entry
	}
	if fields == nil {
		return nil, fmt.Errorf("no %s header: %w", MappingHeader, ErrMalformed)
	}

	return meta, nil
}

// ReadMetadata reads sample metadata, choosing the decoder by extension:
// .yaml/.yml, .toml, .json, or .txt/.tsv mapping files. A ".gz" suffix is
// decompressed first.
//
// Errors: ErrUnsupportedFormat for other extensions; decoder errors;
// metadata.ErrTypeConflict when an entry is not a mapping.
func ReadMetadata(path string) (metadata.Metadata, error) {
	format := formatOf(path)
	switch format {
	case ".txt", ".tsv":
		return ReadMapping(path)
	case ".yaml", ".yml", ".toml", ".json":
	default:
		return nil, fmt.Errorf("read metadata %s: %q: %w", path, format, ErrUnsupportedFormat)
	}

	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}

	meta, err := DecodeMetadata(body, format)
	if err != nil {
		return nil, fmt.Errorf("read metadata %s: %w", path, err)
	}

	return meta, nil
}

// DecodeMetadata decodes a document in format (".yaml", ".yml", ".toml" or
// ".json") into Metadata.
func DecodeMetadata(body []byte, format string) (metadata.Metadata, error) {
	raw := make(map[string]any)
	var err error
	switch format {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(body, &raw)
	case ".toml":
		_, err = toml.NewDecoder(bytes.NewReader(body)).Decode(&raw)
	case ".json":
		err = gojson.Unmarshal(body, &raw)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	return metadata.FromRaw(raw)
}

func isBlank(rec []string) bool {
	return len(rec) == 0 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "")
}

func trimAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.TrimSpace(v)
	}

	return out
}
