package tabkit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b any
		want bool
	}{
		"nil nil":            {a: nil, b: nil, want: true},
		"nil empty string":   {a: nil, b: "", want: false},
		"string":             {a: "x", b: "x", want: true},
		"string vs int":      {a: "1", b: int64(1), want: false},
		"int int":            {a: int64(3), b: int64(3), want: true},
		"int uint":           {a: int64(3), b: uint64(3), want: true},
		"negative int uint":  {a: int64(-1), b: uint64(math.MaxUint64), want: false},
		"uint negative int":  {a: uint64(math.MaxUint64), b: int64(-1), want: false},
		"int float":          {a: int64(2), b: 2.0, want: true},
		"float int fraction": {a: 2.5, b: int64(2), want: false},
		"uint float":         {a: uint64(7), b: 7.0, want: true},
		"bool":               {a: true, b: true, want: true},
		"bool vs int":        {a: true, b: int64(1), want: false},
		"nan":                {a: math.NaN(), b: math.NaN(), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, equalValues(tt.a, tt.b))
		})
	}
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, compareValues("a", "b"))
	assert.Equal(t, 1, compareValues(int64(2), int64(1)))
	assert.Equal(t, 0, compareValues(uint64(5), uint64(5)))
	assert.Equal(t, -1, compareValues(1.5, 2.5))
	assert.Equal(t, -1, compareValues(false, true))
	assert.Equal(t, 1, compareValues(true, false))
	assert.Equal(t, 0, compareValues(true, true))
	assert.Equal(t, 0, compareValues(nil, nil))
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want string
	}{
		"nil":        {in: nil, want: ""},
		"string":     {in: "x", want: "x"},
		"int":        {in: int64(-12), want: "-12"},
		"uint":       {in: uint64(math.MaxUint64), want: "18446744073709551615"},
		"float":      {in: 1.25, want: "1.25"},
		"whole":      {in: 3.0, want: "3"},
		"large":      {in: 1e21, want: "1000000000000000000000"},
		"bool":       {in: false, want: "false"},
		"unexpected": {in: []int{1}, want: "[1]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatValue(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	type label string

	v, k, err := normalize(label("x"))
	assert.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.Equal(t, KindString, k)

	v, k, err = normalize(int8(-3))
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), v)
	assert.Equal(t, KindInt, k)

	v, k, err = normalize(float32(0.5))
	assert.NoError(t, err)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, KindFloat, k)

	_, _, err = normalize(struct{}{})
	assert.ErrorIs(t, err, ErrTypeValidation)

	v, err = normalizeNullable(nil)
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestYAMLFloat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2.0", yamlFloat(2))
	assert.Equal(t, "0.25", yamlFloat(0.25))
	assert.Equal(t, ".nan", yamlFloat(math.NaN()))
	assert.Equal(t, ".inf", yamlFloat(math.Inf(1)))
	assert.Equal(t, "-.inf", yamlFloat(math.Inf(-1)))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", alignCell("ab", 4, alignLeft))
	assert.Equal(t, "  ab", alignCell("ab", 4, alignRight))
	assert.Equal(t, "abcdef", alignCell("abcdef", 4, alignRight))
	assert.Equal(t, "你 ", alignCell("你", 3, alignLeft))
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()
	widths := computeWidths(
		[]string{"id", "name"},
		[][]string{{"1", "日本語"}, {"100", "x"}},
	)
	assert.Equal(t, []int{3, 6}, widths)
}

func TestSchemaLookupNil(t *testing.T) {
	t.Parallel()
	var s *schema
	_, err := s.lookup("x")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestNilTable(t *testing.T) {
	t.Parallel()
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.Width())
	assert.Empty(t, ToDelimitedText(tbl, ","))
	out, err := FilterRows(tbl)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}
