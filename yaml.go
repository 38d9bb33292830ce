package tabkit

import (
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// writeYAML renders t as a YAML sequence of mappings, keys in column order.
func writeYAML(w io.Writer, t *Table) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	names := t.ColumnNames()
	for _, row := range t.records() {
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, name := range names {
			m.Content = append(m.Content, scalarNode("!!str", name), valueNode(row[i]))
		}
		doc.Content = append(doc.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func valueNode(v any) *yaml.Node {
	switch x := v.(type) {
	case nil:
		return scalarNode("!!null", "null")
	case int64, uint64:
		return scalarNode("!!int", formatValue(x))
	case float64:
		return scalarNode("!!float", yamlFloat(x))
	case bool:
		return scalarNode("!!bool", formatValue(x))
	default:
		return scalarNode("!!str", formatValue(x))
	}
}

// yamlFloat keeps integral floats distinguishable from ints.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
