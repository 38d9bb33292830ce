package tabkit

import (
	"io"
	"strings"
)

var pipeEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// writeMarkdown renders t as a GitHub-flavored Markdown table. Numeric
// columns get a right-alignment marker.
func writeMarkdown(w io.Writer, t *Table) error {
	if t.Width() == 0 {
		return nil
	}
	header := escapeCells(t.ColumnNames())
	rows := t.textRows()
	for i, row := range rows {
		rows[i] = escapeCells(row)
	}

	// Minimum 3 leaves room for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}
	aligns := columnAligns(t)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case alignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := io.WriteString(w, "| "+strings.Join(sep, " | ")+" |"+Newline); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := io.WriteString(w, "| "+strings.Join(padded, " | ")+" |"+Newline)
	return err
}

func escapeCells(cells []string) []string {
	for i, c := range cells {
		cells[i] = pipeEscaper.Replace(c)
	}
	return cells
}
