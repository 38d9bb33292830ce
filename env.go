package tabkit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeENV renders a two-column table as KEY=value lines. Values holding
// whitespace, quotes, '#' or '$' are double-quoted.
func writeENV(w io.Writer, t *Table) error {
	if t.Width() != 2 {
		return fmt.Errorf("%w: format %q needs 2 columns, table has %d", ErrShape, ENV, t.Width())
	}
	for _, row := range t.textRows() {
		value := row[1]
		if strings.ContainsAny(value, " \t\r\n\"'#$\\") {
			value = strconv.Quote(value)
		}
		if _, err := fmt.Fprintf(w, "%s=%s%s", row[0], value, Newline); err != nil {
			return err
		}
	}
	return nil
}
