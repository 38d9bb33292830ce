package tabkit

import (
	"fmt"
	"slices"
)

// Predicate constrains a column to equal a value.
type Predicate struct {
	Column string
	Value  any
}

// Where returns a predicate matching rows whose column equals value.
func Where(column string, value any) Predicate {
	return Predicate{Column: column, Value: value}
}

type matcher struct {
	index int
	value any
}

func compile(s *schema, preds []Predicate) ([]matcher, error) {
	ms := make([]matcher, len(preds))
	for i, p := range preds {
		idx, err := s.lookup(p.Column)
		if err != nil {
			return nil, err
		}
		v, err := normalizeNullable(p.Value)
		if err != nil {
			return nil, fmt.Errorf("predicate on %q: %w", p.Column, err)
		}
		ms[i] = matcher{index: idx, value: v}
	}
	return ms, nil
}

func matches(row []any, ms []matcher) bool {
	for _, m := range ms {
		if !equalValues(row[m.index], m.value) {
			return false
		}
	}
	return true
}

// FilterRows returns a new table with the columns of t and the rows that
// satisfy every predicate, in their original order. No matches is an empty
// table, not an error. An unknown column fails with [ErrColumnNotFound].
//
// Values compare by value: integers of any width match when numerically
// equal, and an integer matches a float holding the same number.
func FilterRows(t *Table, preds ...Predicate) (*Table, error) {
	ms, err := compile(t.layout(), preds)
	if err != nil {
		return nil, err
	}
	out := t.CloneSchema()
	for _, row := range t.records() {
		if matches(row, ms) {
			out.rows = append(out.rows, slices.Clone(row))
		}
	}
	return out, nil
}

// FindRow returns the first row whose column equals value. It fails with
// [ErrNoRecord] when nothing matches and with [ErrColumnNotFound] when the
// column does not exist.
func FindRow(t *Table, column string, value any) (Row, error) {
	s := t.layout()
	ms, err := compile(s, []Predicate{Where(column, value)})
	if err != nil {
		return Row{}, err
	}
	for _, row := range t.records() {
		if matches(row, ms) {
			return Row{schema: s, values: slices.Clone(row)}, nil
		}
	}
	return Row{}, fmt.Errorf("%w: %s = %v", ErrNoRecord, column, value)
}
