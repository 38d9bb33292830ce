package app

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabkit"
)

// ErrNotMapping indicates a YAML document whose root is not a mapping.
var ErrNotMapping = errors.New("yaml document is not a mapping")

// MappingEntry is one key of a flat YAML mapping. Value is the decoded scalar
// (nil for null) and Text its source text ("" for null).
type MappingEntry struct {
	Key   string
	Value any
	Text  string
}

// ReadYAMLMapping reads a flat YAML mapping in document order. Nested
// mappings and sequences fail with tabkit.ErrTypeValidation. Timestamps are
// kept as their source text. An empty document is an empty mapping.
func ReadYAMLMapping(r io.Reader) ([]MappingEntry, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// The root node is a document node, content[0] is the actual map.
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotMapping, root.Line)
	}

	entries := make([]MappingEntry, 0, len(root.Content)/2)
	seen := make(map[string]struct{}, len(root.Content)/2)

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := resolve(root.Content[i]), resolve(root.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key at line %d", tabkit.ErrTypeValidation, keyNode.Line)
		}

		if _, dup := seen[keyNode.Value]; dup {
			return nil, fmt.Errorf("%w: '%s' at line %d", tabkit.ErrDuplicateKey, keyNode.Value, keyNode.Line)
		}

		seen[keyNode.Value] = struct{}{}

		entry, err := decodeEntry(keyNode.Value, valueNode)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

func decodeEntry(key string, n *yaml.Node) (MappingEntry, error) {
	if n.Kind != yaml.ScalarNode {
		return MappingEntry{}, fmt.Errorf("%w: value of '%s' at line %d is not a scalar",
			tabkit.ErrTypeValidation, key, n.Line)
	}

	// Dates and times stay text; a table has no time kind.
	if n.ShortTag() == "!!timestamp" {
		return MappingEntry{Key: key, Value: n.Value, Text: n.Value}, nil
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return MappingEntry{}, fmt.Errorf("failed to decode value of '%s': %w", key, err)
	}

	if v == nil {
		return MappingEntry{Key: key}, nil
	}

	if _, err := tabkit.KindOf(v); err != nil {
		return MappingEntry{}, fmt.Errorf("value of '%s': %w", key, err)
	}

	return MappingEntry{Key: key, Value: v, Text: n.Value}, nil
}

// SortEntries orders entries by key.
func SortEntries(entries []MappingEntry) {
	slices.SortFunc(entries, func(a, b MappingEntry) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// MappingTable builds a key/value table from entries. The value column takes
// the kind shared by every non-null value; mixed kinds fall back to the source
// text in a string column.
func MappingTable(entries []MappingEntry, keyName, valueName string) (*tabkit.Table, error) {
	kind, uniform := valueKind(entries)

	t, err := tabkit.NewTable(
		tabkit.Column{Name: keyName, Kind: tabkit.KindString},
		tabkit.Column{Name: valueName, Kind: kind},
	)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		value := e.Value
		if !uniform && value != nil {
			value = e.Text
		}

		if err := t.AddRow(e.Key, value); err != nil {
			return nil, fmt.Errorf("key '%s': %w", e.Key, err)
		}
	}

	return t, nil
}

func valueKind(entries []MappingEntry) (tabkit.Kind, bool) {
	kind, found := tabkit.KindString, false

	for _, e := range entries {
		if e.Value == nil {
			continue
		}

		k, _ := tabkit.KindOf(e.Value) // decodeEntry already checked it
		if !found {
			kind, found = k, true
			continue
		}

		if k != kind {
			return tabkit.KindString, false
		}
	}

	return kind, true
}

// TextPairs returns the entries as key/text pairs for the delimited mapping
// formatter.
func TextPairs(entries []MappingEntry) []tabkit.Pair[string, string] {
	pairs := make([]tabkit.Pair[string, string], len(entries))
	for i, e := range entries {
		pairs[i] = tabkit.Pair[string, string]{Key: e.Key, Value: e.Text}
	}

	return pairs
}

// TextMap returns the entries as a key to text map.
func TextMap(entries []MappingEntry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Text
	}

	return m
}
