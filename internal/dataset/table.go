// Package dataset provides the tabular container for simulated data:
// named float64 columns of equal length, with CSV and Arrow interop for
// handing the table to external regression or analysis tooling.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Table is an immutable table of named float64 columns. Column order is
// fixed at construction and preserved through every export.
type Table struct {
	names   []string
	columns map[string][]float64
	rows    int
}

// New builds a Table from ordered column names and their data. Every column
// must be present in data and have the same non-zero length.
func New(names []string, data map[string][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("table needs at least one column")
	}
	if len(data) != len(names) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(names), len(data))
	}

	rows := -1
	for _, name := range names {
		col, ok := data[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		if rows == -1 {
			rows = len(col)
		} else if len(col) != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, len(col), rows)
		}
	}
	if rows == 0 {
		return nil, fmt.Errorf("table needs at least one row")
	}

	// Copy so later mutation of the caller's slices cannot alias the table.
	columns := make(map[string][]float64, len(names))
	for _, name := range names {
		col := make([]float64, rows)
		copy(col, data[name])
		columns[name] = col
	}
	namesCopy := make([]string, len(names))
	copy(namesCopy, names)

	return &Table{names: namesCopy, columns: columns, rows: rows}, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// Names returns the column names in table order. The caller must not mutate
// the returned slice.
func (t *Table) Names() []string { return t.names }

// Column returns the data for a named column, or an error for an unknown
// name. The caller must not mutate the returned slice.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	return col, nil
}

// mustColumn is Column for internal callers that already validated the name.
func (t *Table) mustColumn(name string) []float64 {
	return t.columns[name]
}

// WriteCSV writes the table as CSV with a header row, columns in table
// order, values formatted with full float64 round-trip precision.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(t.names))
	for row := 0; row < t.rows; row++ {
		for i, name := range t.names {
			record[i] = strconv.FormatFloat(t.columns[name][row], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
