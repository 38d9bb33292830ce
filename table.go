package tabkit

import (
	"fmt"
	"slices"
)

// Column is a named, typed table column.
type Column struct {
	Name string
	Kind Kind
}

// schema is the immutable column layout shared by a table, its rows and the
// tables derived from it.
type schema struct {
	columns []Column
	index   map[string]int
}

var emptySchema = &schema{index: map[string]int{}}

func newSchema(columns []Column) (*schema, error) {
	s := &schema{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if !c.Kind.valid() {
			return nil, fmt.Errorf("%w: column %q has unknown %s", ErrTypeValidation, c.Name, c.Kind)
		}
		if c.Name == "" {
			return nil, fmt.Errorf("%w: column %d", ErrEmptyColumnName, i)
		}
		if _, dup := s.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		s.index[c.Name] = i
	}
	return s, nil
}

func (s *schema) lookup(name string) (int, error) {
	if s != nil {
		if i, ok := s.index[name]; ok {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

func (s *schema) names() []string {
	out := make([]string, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.Name
	}
	return out
}

// Table is an ordered set of typed columns and positional rows.
//
// Values are stored as int64, uint64, float64, bool or string according to
// the column kind; nil is the null marker. A Table is not safe for concurrent
// use while rows are being added.
type Table struct {
	schema *schema
	rows   [][]any
}

// NewTable returns an empty table with the given columns. Column names must
// be non-empty ([ErrEmptyColumnName]) and unique ([ErrDuplicateColumn]).
func NewTable(columns ...Column) (*Table, error) {
	s, err := newSchema(columns)
	if err != nil {
		return nil, err
	}
	return &Table{schema: s}, nil
}

func (t *Table) records() [][]any {
	if t == nil {
		return nil
	}
	return t.rows
}

// textRows returns every row rendered as text.
func (t *Table) textRows() [][]string {
	rows := t.records()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = Row{values: row}.Strings()
	}
	return out
}

func (t *Table) layout() *schema {
	if t == nil || t.schema == nil {
		return emptySchema
	}
	return t.schema
}

// Columns returns a copy of the column list.
func (t *Table) Columns() []Column {
	return slices.Clone(t.layout().columns)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	return t.layout().names()
}

// Column returns the named column or [ErrColumnNotFound].
func (t *Table) Column(name string) (Column, error) {
	s := t.layout()
	i, err := s.lookup(name)
	if err != nil {
		return Column{}, err
	}
	return s.columns[i], nil
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.layout().columns) }

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns a copy of row i. It panics if i is out of range.
func (t *Table) Row(i int) Row {
	return Row{schema: t.layout(), values: slices.Clone(t.rows[i])}
}

// Rows returns copies of all rows.
func (t *Table) Rows() []Row {
	out := make([]Row, t.Len())
	for i := range out {
		out[i] = t.Row(i)
	}
	return out
}

// AddRow appends a row. It fails with [ErrRowWidth] when the value count
// differs from the column count and with [ErrTypeValidation] when a non-nil
// value is not a scalar of its column's kind. Any integer width is accepted
// for int and uint columns, and float32 for float columns.
func (t *Table) AddRow(values ...any) error {
	s := t.layout()
	if len(values) != len(s.columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowWidth, len(values), len(s.columns))
	}
	row := make([]any, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		nv, k, err := normalize(v)
		if err != nil {
			return fmt.Errorf("column %q: %w", s.columns[i].Name, err)
		}
		if k != s.columns[i].Kind {
			return fmt.Errorf("%w: column %q holds %s, got %T", ErrTypeValidation, s.columns[i].Name, s.columns[i].Kind, v)
		}
		row[i] = nv
	}
	t.rows = append(t.rows, row)
	return nil
}

// CloneSchema returns an empty table with the same columns.
func (t *Table) CloneSchema() *Table {
	return &Table{schema: t.layout()}
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	out := t.CloneSchema()
	out.rows = make([][]any, t.Len())
	for i, r := range t.records() {
		out.rows[i] = slices.Clone(r)
	}
	return out
}

// Row is a single table row. Rows returned by a [Table] are copies.
type Row struct {
	schema *schema
	values []any
}

// Len returns the number of values in the row.
func (r Row) Len() int { return len(r.values) }

// Value returns the value at position i.
func (r Row) Value(i int) any { return r.values[i] }

// Values returns a copy of the row values.
func (r Row) Values() []any { return slices.Clone(r.values) }

// Get returns the value of the named column or [ErrColumnNotFound].
func (r Row) Get(column string) (any, error) {
	i, err := r.schema.lookup(column)
	if err != nil {
		return nil, err
	}
	return r.values[i], nil
}

// IsNull reports whether the value at position i is the null marker.
func (r Row) IsNull(i int) bool { return r.values[i] == nil }

// Strings returns the text representation of each value.
func (r Row) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = formatValue(v)
	}
	return out
}
