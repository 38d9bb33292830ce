package tabkit

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type alignment int

const (
	alignLeft alignment = iota
	alignRight
)

// columnAligns right-aligns numeric columns and left-aligns the rest.
func columnAligns(t *Table) []alignment {
	cols := t.layout().columns
	aligns := make([]alignment, len(cols))
	for i, c := range cols {
		if c.Kind.Numeric() {
			aligns[i] = alignRight
		}
	}
	return aligns
}

// computeWidths returns the display width of each column, measured with
// runewidth so wide and combining characters line up.
func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeText renders t as aligned columns. With grid set the table is boxed
// in ASCII borders; otherwise columns are separated by two spaces and the
// header is underlined with dashes.
func writeText(w io.Writer, t *Table, grid bool) error {
	if t.Width() == 0 {
		return nil
	}
	header := t.ColumnNames()
	rows := t.textRows()
	widths := computeWidths(header, rows)
	aligns := columnAligns(t)
	if grid {
		return renderGrid(w, header, rows, widths, aligns)
	}
	return renderPlain(w, header, rows, widths, aligns)
}

// --- Plain ---

func renderPlain(w io.Writer, header []string, rows [][]string, widths []int, aligns []alignment) error {
	if err := writePlainRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := writePlainSep(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := io.WriteString(w, strings.Join(sep, "  ")+Newline)
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = alignCell(cells[i], width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	_, err := io.WriteString(w, line+Newline)
	return err
}

// --- Grid ---

func renderGrid(w io.Writer, header []string, rows [][]string, widths []int, aligns []alignment) error {
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	if err := drawGridRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := drawHLine(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawGridRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return drawHLine(w, widths)
}

func drawHLine(w io.Writer, widths []int) error {
	var sb strings.Builder
	sb.WriteString("+")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString(Newline)
	_, err := io.WriteString(w, sb.String())
	return err
}

func drawGridRow(w io.Writer, cells []string, widths []int, aligns []alignment) error {
	var sb strings.Builder
	sb.WriteString("|")
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, aligns[i]))
		sb.WriteString(" |")
	}
	sb.WriteString(Newline)
	_, err := io.WriteString(w, sb.String())
	return err
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	default:
		return s + strings.Repeat(" ", pad)
	}
}
