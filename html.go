package tabkit

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t *Table) error {
	aligns := columnAligns(t)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if t.Width() > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if err := writeHTMLRow(w, "th", t.ColumnNames(), aligns); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range t.textRows() {
		if err := writeHTMLRow(w, "td", row, aligns); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLRow(w io.Writer, tag string, cells []string, aligns []alignment) error {
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, cell := range cells {
		if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", tag, alignStyle(aligns, i), html.EscapeString(cell), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "    </tr>")
	return err
}

func alignStyle(aligns []alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	if aligns[col] == alignRight {
		return ` style="text-align: right"`
	}
	return ""
}
