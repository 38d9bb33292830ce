// Package arrowtab converts tabkit tables to and from Apache Arrow records
// and Parquet files.
package arrowtab

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/bjaus/tabkit"
)

// readChunk is the row count per record when draining an arrow.Table.
const readChunk = 1024

// Schema returns the Arrow schema for the columns of t. Every field is
// nullable.
func Schema(t *tabkit.Table) (*arrow.Schema, error) {
	cols := t.Columns()
	fields := make([]arrow.Field, len(cols))
	for i, c := range cols {
		dt, err := dataType(c.Kind)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		fields[i] = arrow.Field{Name: c.Name, Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

func dataType(k tabkit.Kind) (arrow.DataType, error) {
	switch k {
	case tabkit.KindString:
		return arrow.BinaryTypes.String, nil
	case tabkit.KindInt:
		return arrow.PrimitiveTypes.Int64, nil
	case tabkit.KindUint:
		return arrow.PrimitiveTypes.Uint64, nil
	case tabkit.KindFloat:
		return arrow.PrimitiveTypes.Float64, nil
	case tabkit.KindBool:
		return arrow.FixedWidthTypes.Boolean, nil
	}
	return nil, fmt.Errorf("%w: no arrow type for %s", tabkit.ErrTypeValidation, k)
}

// kindOf maps an Arrow type onto a column kind. Narrow integer and float
// types widen to the 64-bit kinds.
func kindOf(dt arrow.DataType) (tabkit.Kind, error) {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return tabkit.KindString, nil
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64:
		return tabkit.KindInt, nil
	case arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return tabkit.KindUint, nil
	case arrow.FLOAT32, arrow.FLOAT64:
		return tabkit.KindFloat, nil
	case arrow.BOOL:
		return tabkit.KindBool, nil
	}
	return 0, fmt.Errorf("%w: unsupported arrow type %s", tabkit.ErrTypeValidation, dt)
}

// ToRecord builds an Arrow record holding the rows of t. Null values stay
// null. The caller owns the record and must Release it.
func ToRecord(mem memory.Allocator, t *tabkit.Table) (arrow.Record, error) {
	schema, err := Schema(t)
	if err != nil {
		return nil, err
	}
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for _, row := range t.All() {
		for i, v := range row.Values() {
			appendValue(b.Field(i), v)
		}
	}
	return b.NewRecord(), nil
}

// appendValue appends a normalized table value. The builder type always
// matches because the schema was derived from the same columns.
func appendValue(b array.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.AppendNull()
	case string:
		b.(*array.StringBuilder).Append(x)
	case int64:
		b.(*array.Int64Builder).Append(x)
	case uint64:
		b.(*array.Uint64Builder).Append(x)
	case float64:
		b.(*array.Float64Builder).Append(x)
	case bool:
		b.(*array.BooleanBuilder).Append(x)
	}
}

// FromRecord copies rec into a new table. Arrow types without a matching
// column kind fail with [tabkit.ErrTypeValidation].
func FromRecord(rec arrow.Record) (*tabkit.Table, error) {
	t, err := newTable(rec.Schema())
	if err != nil {
		return nil, err
	}
	if err := appendRecord(t, rec); err != nil {
		return nil, err
	}
	return t, nil
}

// FromArrowTable copies every chunk of tbl into a new table.
func FromArrowTable(tbl arrow.Table) (*tabkit.Table, error) {
	t, err := newTable(tbl.Schema())
	if err != nil {
		return nil, err
	}
	tr := array.NewTableReader(tbl, readChunk)
	defer tr.Release()

	for tr.Next() {
		if err := appendRecord(t, tr.Record()); err != nil {
			return nil, err
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("read arrow table: %w", err)
	}
	return t, nil
}

func newTable(schema *arrow.Schema) (*tabkit.Table, error) {
	fields := schema.Fields()
	cols := make([]tabkit.Column, len(fields))
	for i, f := range fields {
		k, err := kindOf(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		cols[i] = tabkit.Column{Name: f.Name, Kind: k}
	}
	return tabkit.NewTable(cols...)
}

func appendRecord(t *tabkit.Table, rec arrow.Record) error {
	cols := rec.Columns()
	for row := range int(rec.NumRows()) {
		values := make([]any, len(cols))
		for i, col := range cols {
			values[i] = value(col, row)
		}
		if err := t.AddRow(values...); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
	}
	return nil
}

func value(col arrow.Array, i int) any {
	if col.IsNull(i) {
		return nil
	}
	switch a := col.(type) {
	case *array.String:
		return a.Value(i)
	case *array.LargeString:
		return a.Value(i)
	case *array.Int8:
		return a.Value(i)
	case *array.Int16:
		return a.Value(i)
	case *array.Int32:
		return a.Value(i)
	case *array.Int64:
		return a.Value(i)
	case *array.Uint8:
		return a.Value(i)
	case *array.Uint16:
		return a.Value(i)
	case *array.Uint32:
		return a.Value(i)
	case *array.Uint64:
		return a.Value(i)
	case *array.Float32:
		return a.Value(i)
	case *array.Float64:
		return a.Value(i)
	case *array.Boolean:
		return a.Value(i)
	}
	return nil
}
