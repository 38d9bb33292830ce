package tabkit

import (
	"encoding/csv"
	"io"
)

// writeCSV renders t as RFC 4180 CSV. Unlike [WriteDelimited], fields that
// contain the separator, quotes or line breaks are quoted.
func writeCSV(w io.Writer, t *Table) error {
	if t.Width() == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = Newline == "\r\n"
	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}
	for _, row := range t.textRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
