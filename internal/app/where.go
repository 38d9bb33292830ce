package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bjaus/tabkit"
)

// ErrInvalidWhere indicates a --where argument that is not column=value.
var ErrInvalidWhere = errors.New("where clause must look like column=value")

// Clause is a parsed --where argument. Value is the raw text after the first
// '='.
type Clause struct {
	Column string
	Value  string
}

// ParseWhere splits "column=value" on the first '='. The value may be empty
// or contain further '=' characters; the column may not be empty.
func ParseWhere(s string) (Clause, error) {
	column, value, ok := strings.Cut(s, "=")
	column = strings.TrimSpace(column)

	if !ok || column == "" {
		return Clause{}, fmt.Errorf("%w: '%s'", ErrInvalidWhere, s)
	}

	return Clause{Column: column, Value: value}, nil
}

// Predicates converts clauses into predicates typed for the columns of t, so
// "age=30" matches an int column. Clauses naming unknown columns keep their
// text value and fail later in tabkit.FilterRows.
func Predicates(t *tabkit.Table, clauses []Clause) ([]tabkit.Predicate, error) {
	preds := make([]tabkit.Predicate, len(clauses))

	for i, c := range clauses {
		col, err := t.Column(c.Column)
		if err != nil {
			preds[i] = tabkit.Where(c.Column, c.Value)
			continue
		}

		v, err := coerce(col.Kind, c.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: column '%s' holds %s, got '%s'", tabkit.ErrTypeValidation, c.Column, col.Kind, c.Value)
		}

		preds[i] = tabkit.Where(c.Column, v)
	}

	return preds, nil
}

func coerce(kind tabkit.Kind, s string) (any, error) {
	switch kind {
	case tabkit.KindInt:
		return strconv.ParseInt(s, 10, 64)
	case tabkit.KindUint:
		return strconv.ParseUint(s, 10, 64)
	case tabkit.KindFloat:
		return strconv.ParseFloat(s, 64)
	case tabkit.KindBool:
		return strconv.ParseBool(s)
	default:
		return s, nil
	}
}
