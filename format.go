package tabkit

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Format names an output rendering of a table.
type Format string

const (
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Text     Format = "text"
	Grid     Format = "grid"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	ENV      Format = "env"
	List     Format = "list"
)

const (
	goTemplatePrefix = "go-template="
	delimitedPrefix  = "delimited="
)

var formats = []Format{CSV, TSV, Text, Grid, Markdown, HTML, JSON, JSONL, YAML, ENV, List}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all static format names. Delimited and GoTemplate are not
// included because they are parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Delimited returns a Format that renders delimited text with the given
// separator, as [WriteDelimited] does.
func Delimited(sep string) Format {
	return Format(delimitedPrefix + sep)
}

// GoTemplate returns a Format that renders rows using a Go text/template.
// Each row is executed as a map from column name to value and written on
// its own line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats,
// delimited=<sep> and go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	if sep, ok := strings.CutPrefix(s, delimitedPrefix); ok {
		if sep == "" {
			return "", fmt.Errorf("%w: %q", ErrEmptyDelimiter, s)
		}
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t in format f to w.
func Write(w io.Writer, f Format, t *Table) error {
	switch f {
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return WriteDelimited(w, t, "\t")
	case Text:
		return writeText(w, t, false)
	case Grid:
		return writeText(w, t, true)
	case Markdown:
		return writeMarkdown(w, t)
	case HTML:
		return writeHTML(w, t)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	case ENV:
		return writeENV(w, t)
	case List:
		return writeList(w, t)
	}
	if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
		return writeGoTemplate(w, tmpl, t)
	}
	if sep, ok := strings.CutPrefix(string(f), delimitedPrefix); ok && sep != "" {
		return WriteDelimited(w, t, sep)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
