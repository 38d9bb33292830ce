package tabkit

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
)

// object is one row marshaled as a JSON object with keys in column order.
// NaN and infinite floats have no JSON form and encode as null.
type object struct {
	names  []string
	values []any
}

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode terminates each value with a newline.
	encode := func(v any) error {
		if err := enc.Encode(v); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}
	buf.WriteByte('{')
	for i, name := range o.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encode(name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encode(jsonValue(o.values[i])); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func jsonValue(v any) any {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return nil
	}
	return v
}

func objects(t *Table) []object {
	names := t.ColumnNames()
	rows := t.records()
	out := make([]object, len(rows))
	for i, row := range rows {
		out[i] = object{names: names, values: row}
	}
	return out
}

func writeJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(objects(t))
}
