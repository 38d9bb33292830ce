package tabkit

import (
	"fmt"
	"io"
)

// writeList writes the values of a single-column table, one per line,
// without a header.
func writeList(w io.Writer, t *Table) error {
	if t.Width() != 1 {
		return fmt.Errorf("%w: format %q needs 1 column, table has %d", ErrShape, List, t.Width())
	}
	for _, row := range t.records() {
		if _, err := io.WriteString(w, formatValue(row[0])+Newline); err != nil {
			return err
		}
	}
	return nil
}
