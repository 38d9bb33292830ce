package tabkit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineSize = 1 << 20

// ToDelimitedText renders t as a header line of column names followed by one
// line per row, fields joined by delimiter and every line ending in
// [Newline]. A table without columns renders as the empty string.
//
// Fields are not quoted. [ParseDelimited] only restores the table when no
// cell contains the delimiter, a line feed or a carriage return; use [CSV]
// output for arbitrary text.
func ToDelimitedText(t *Table, delimiter string) string {
	var sb strings.Builder
	_ = WriteDelimited(&sb, t, delimiter) // strings.Builder never fails
	return sb.String()
}

// WriteDelimited writes the delimited text form of t to w.
func WriteDelimited(w io.Writer, t *Table, delimiter string) error {
	s := t.layout()
	if len(s.columns) == 0 {
		return nil
	}
	if err := writeLine(w, s.names(), delimiter); err != nil {
		return err
	}
	fields := make([]string, len(s.columns))
	for _, row := range t.records() {
		for i, v := range row {
			fields[i] = formatValue(v)
		}
		if err := writeLine(w, fields, delimiter); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, fields []string, delimiter string) error {
	_, err := io.WriteString(w, strings.Join(fields, delimiter)+Newline)
	return err
}

// ParseDelimited is the inverse of [ToDelimitedText]. Every column of the
// result is [KindString].
func ParseDelimited(text, delimiter string) (*Table, error) {
	return ReadDelimited(strings.NewReader(text), delimiter)
}

// ReadDelimited reads delimited text from r. The first line names the
// columns; each following line is a row and must have as many fields as the
// header, otherwise [ErrRowWidth] is returned. A blank header field fails
// with [ErrEmptyColumnName]. Both "\n" and "\r\n" line endings are
// accepted. Blank lines are skipped unless the table has a single column,
// where a blank line is a row holding the empty string. Empty input yields a
// table with no columns.
func ReadDelimited(r io.Reader, delimiter string) (*Table, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var t *Table
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if t == nil {
			header := strings.Split(text, delimiter)
			columns := make([]Column, len(header))
			for i, name := range header {
				columns[i] = Column{Name: name, Kind: KindString}
			}
			var err error
			if t, err = NewTable(columns...); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}
		width := len(t.schema.columns)
		if text == "" && width > 1 {
			continue
		}
		fields := strings.Split(text, delimiter)
		if len(fields) != width {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrRowWidth, line, len(fields), width)
		}
		row := make([]any, width)
		for i, f := range fields {
			row[i] = f
		}
		t.rows = append(t.rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read delimited text: %w", err)
	}
	if t == nil {
		return &Table{schema: emptySchema}, nil
	}
	return t, nil
}
