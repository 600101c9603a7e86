// SPDX-License-Identifier: MIT

// Package instance - CSV problem loading.
//
// Contract:
//   - Every data row has the same number of cells (else ErrMalformed).
//   - After framing is stripped the matrix must be square (graph.ErrNonSquare).
//   - Any non-zero numeric cell is an edge; "1", "1.0" and "2" are equivalent.
//   - NaN and ±Inf cells are rejected (ErrMalformed).
package instance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcolor/graph"
)

// Table is a loaded problem: the instance plus the vertex labels taken from
// the header row (or "0".."n-1" when there is none).
type Table struct {
	Instance *graph.Instance
	Labels   []string
}

// LoadOption configures problem-file framing.
type LoadOption func(*loadOptions)

type loadOptions struct {
	headerRow   bool
	indexColumn bool
}

// WithHeaderRow sets whether row 0 holds labels and must be stripped.
func WithHeaderRow(on bool) LoadOption {
	return func(o *loadOptions) { o.headerRow = on }
}

// WithIndexColumn sets whether column 0 holds labels and must be stripped.
func WithIndexColumn(on bool) LoadOption {
	return func(o *loadOptions) { o.indexColumn = on }
}

func gatherLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{headerRow: true}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("LoadCSV %q: %w", path, ErrInstanceNotFound)
		}
		return nil, fmt.Errorf("LoadCSV %q: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadCSV %q: %w", path, err)
	}

	return t, nil
}

// ReadCSV parses an adjacency matrix from r.
func ReadCSV(r io.Reader, opts ...LoadOption) (*Table, error) {
	o := gatherLoadOptions(opts)

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}

	var header []string
	if o.headerRow && len(records) > 0 {
		header, records = records[0], records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmptyInstance
	}

	var (
		skip = 0
		rows = make([][]float64, len(records))
		i    int
		j    int
	)
	if o.indexColumn {
		skip = 1
	}
	for i = range records {
		if len(records[i]) <= skip {
			return nil, fmt.Errorf("row %d has no data cells: %w", i, ErrMalformed)
		}
		cells := records[i][skip:]
		rows[i] = make([]float64, len(cells))
		for j = range cells {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cells[j]), 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", i, j, cells[j], ErrMalformed)
			}
			rows[i][j] = v
		}
	}

	g, err := graph.NewInstanceFloat(rows)
	if err != nil {
		return nil, err
	}

	return &Table{Instance: g, Labels: labels(header, skip, g.Order())}, nil
}

// labels returns the header cells aligned to data columns, or positional
// names when the header is absent or does not fit.
func labels(header []string, skip, n int) []string {
	if len(header) == n+skip {
		return append([]string(nil), header[skip:]...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}
