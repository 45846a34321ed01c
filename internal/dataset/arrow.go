package dataset

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// Schema returns the Arrow schema for the table: one float64 field per
// column, in table order.
func (t *Table) Schema() *arrow.Schema {
	fields := make([]arrow.Field, len(t.names))
	for i, name := range t.names {
		fields[i] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
	}
	return arrow.NewSchema(fields, nil)
}

// ToArrow converts the table to a single Arrow record batch. The caller
// owns the returned record and must Release it.
func (t *Table) ToArrow() arrow.Record {
	schema := t.Schema()
	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	for i, name := range t.names {
		b.Field(i).(*array.Float64Builder).AppendValues(t.mustColumn(name), nil)
	}
	return b.NewRecord()
}

// WriteArrowFile writes the table as an Arrow IPC file at path.
func (t *Table) WriteArrowFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	rec := t.ToArrow()
	defer rec.Release()

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()))
	if err != nil {
		return fmt.Errorf("create IPC writer: %w", err)
	}
	if err := w.Write(rec); err != nil {
		w.Close()
		return fmt.Errorf("write record: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close IPC writer: %w", err)
	}
	return f.Close()
}

// FromArrow rebuilds a Table from an Arrow record batch of float64 fields.
func FromArrow(rec arrow.Record) (*Table, error) {
	schema := rec.Schema()
	names := make([]string, len(schema.Fields()))
	data := make(map[string][]float64, len(names))

	for i, field := range schema.Fields() {
		col, ok := rec.Column(i).(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("column %q: expected float64, got %s", field.Name, field.Type)
		}
		names[i] = field.Name
		data[field.Name] = col.Float64Values()
	}
	return New(names, data)
}
