package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabkit"
)

// TestReadYAMLMapping tests decoding of flat mappings.
func TestReadYAMLMapping(t *testing.T) {
	t.Parallel()

	entries, err := ReadYAMLMapping(strings.NewReader(`
name: tabkit
port: 8080
ratio: 0.5
debug: false
missing: ~
quoted: "42"
`))
	require.NoError(t, err)
	assert.Equal(t, []MappingEntry{
		{Key: "name", Value: "tabkit", Text: "tabkit"},
		{Key: "port", Value: 8080, Text: "8080"},
		{Key: "ratio", Value: 0.5, Text: "0.5"},
		{Key: "debug", Value: false, Text: "false"},
		{Key: "missing"},
		{Key: "quoted", Value: "42", Text: "42"},
	}, entries)
}

// TestReadYAMLMappingTimestamps tests that dates stay as text.
func TestReadYAMLMappingTimestamps(t *testing.T) {
	t.Parallel()

	entries, err := ReadYAMLMapping(strings.NewReader(`
name: tabkit
released: 2020-01-02
built: 2020-01-02T15:04:05Z
quoted: "2021-03-04"
`))
	require.NoError(t, err)
	assert.Equal(t, []MappingEntry{
		{Key: "name", Value: "tabkit", Text: "tabkit"},
		{Key: "released", Value: "2020-01-02", Text: "2020-01-02"},
		{Key: "built", Value: "2020-01-02T15:04:05Z", Text: "2020-01-02T15:04:05Z"},
		{Key: "quoted", Value: "2021-03-04", Text: "2021-03-04"},
	}, entries)

	tbl, err := MappingTable(entries, "k", "v")
	require.NoError(t, err)
	col, err := tbl.Column("v")
	require.NoError(t, err)
	assert.Equal(t, tabkit.KindString, col.Kind)
}

// TestReadYAMLMappingEmpty tests that an empty document is an empty mapping.
func TestReadYAMLMappingEmpty(t *testing.T) {
	t.Parallel()

	entries, err := ReadYAMLMapping(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestReadYAMLMappingAlias tests that aliases resolve to their anchors.
func TestReadYAMLMappingAlias(t *testing.T) {
	t.Parallel()

	entries, err := ReadYAMLMapping(strings.NewReader("a: &x 1\nb: *x\n"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[1].Value)
}

// TestReadYAMLMappingInvalid tests that malformed YAML fails.
func TestReadYAMLMappingInvalid(t *testing.T) {
	t.Parallel()

	_, err := ReadYAMLMapping(strings.NewReader("a: [unclosed"))
	require.Error(t, err)
}

// TestMappingTable tests kind inference for the value column.
func TestMappingTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entries  []MappingEntry
		wantKind tabkit.Kind
		want     []any
	}{
		{
			name:     "uniform ints",
			entries:  []MappingEntry{{Key: "a", Value: 1, Text: "1"}, {Key: "b", Value: 2, Text: "2"}},
			wantKind: tabkit.KindInt,
			want:     []any{int64(1), int64(2)},
		},
		{
			name:     "nulls do not decide the kind",
			entries:  []MappingEntry{{Key: "a"}, {Key: "b", Value: true, Text: "true"}},
			wantKind: tabkit.KindBool,
			want:     []any{nil, true},
		},
		{
			name:     "mixed kinds fall back to text",
			entries:  []MappingEntry{{Key: "a", Value: 1, Text: "1"}, {Key: "b", Value: "x", Text: "x"}},
			wantKind: tabkit.KindString,
			want:     []any{"1", "x"},
		},
		{
			name:     "all null",
			entries:  []MappingEntry{{Key: "a"}},
			wantKind: tabkit.KindString,
			want:     []any{nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := MappingTable(tt.entries, "k", "v")
			require.NoError(t, err)

			col, err := tbl.Column("v")
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, col.Kind)

			got := make([]any, 0, tbl.Len())
			for _, row := range tbl.All() {
				got = append(got, row.Value(1))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMappingTableSameNames tests that colliding column names fail.
func TestMappingTableSameNames(t *testing.T) {
	t.Parallel()

	_, err := MappingTable(nil, "k", "k")
	require.ErrorIs(t, err, tabkit.ErrDuplicateColumn)
}

// TestSortEntries tests ordering by key.
func TestSortEntries(t *testing.T) {
	t.Parallel()

	entries := []MappingEntry{{Key: "b"}, {Key: "c"}, {Key: "a"}}
	SortEntries(entries)
	assert.Equal(t, []MappingEntry{{Key: "a"}, {Key: "b"}, {Key: "c"}}, entries)
}

// TestTextPairsAndMap tests the text views used by the mapping formatter.
func TestTextPairsAndMap(t *testing.T) {
	t.Parallel()

	entries := []MappingEntry{{Key: "b", Value: 2, Text: "2"}, {Key: "a"}}
	assert.Equal(t, []tabkit.Pair[string, string]{{Key: "b", Value: "2"}, {Key: "a", Value: ""}}, TextPairs(entries))
	assert.Equal(t, map[string]string{"a": "", "b": "2"}, TextMap(entries))
}
