package tabkit

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t *Table) error {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	names := t.ColumnNames()
	for _, row := range t.records() {
		data := make(map[string]any, len(names))
		for i, name := range names {
			data[name] = row[i]
		}
		if err := tmpl.Execute(w, data); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Newline); err != nil {
			return err
		}
	}
	return nil
}
