// Package tabkit converts between in-memory tables, delimited text, sequences
// and key/value mappings, and filters tables by column values.
//
// A [Table] is an ordered list of typed [Column] values plus positional rows.
// Column kinds are limited to the scalar kinds in [Kind]; the generic
// converters enforce this at compile time through the [Scalar] constraint.
//
// # Delimited Text
//
// [ToDelimitedText] writes a header line of column names and one line per
// row, fields joined by the caller's delimiter and lines ended by [Newline]:
//
//	text := tabkit.ToDelimitedText(t, ",")
//
// [ParseDelimited] reads it back into a table of string columns.
//
// # Conversions
//
// [SequenceToTable] builds a single "Id" column from a slice. [MappingToTable]
// builds a key/value table from a map, ordered by key; [PairsToTable] and
// [Seq2ToTable] keep the caller's order. [MappingToDelimitedText] goes from a
// map straight to delimited text without building a table:
//
//	tabkit.MappingToDelimitedText(map[string]int{"a": 1, "b": 2}, ",", "Key", "Value")
//	// Key,Value
//	// a,1
//	// b,2
//
// # Filtering
//
// [FilterRows] returns a copy of a table holding the rows that match every
// [Predicate]; [FindRow] returns the first match:
//
//	matched, err := tabkit.FilterRows(t, tabkit.Where("age", 30), tabkit.Where("city", "NY"))
//	row, err := tabkit.FindRow(t, "id", 3)
//	if errors.Is(err, tabkit.ErrNoRecord) { ... }
//
// # Formats
//
// [Write] and [Marshal] render a table as CSV, TSV, aligned text, an ASCII
// grid, Markdown, HTML, JSON, JSONL, YAML, ENV or a plain list. Use
// [Delimited] for a custom separator and [GoTemplate] for per-row templates.
// [ParseFormat] turns a CLI flag value into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrTypeValidation]: a value is not a scalar of the expected kind
//   - [ErrColumnNotFound]: a column name is not in the table
//   - [ErrNoRecord]: [FindRow] matched nothing
//   - [ErrDuplicateColumn]: two columns share a name
//   - [ErrEmptyColumnName]: a column has no name
//   - [ErrDuplicateKey]: an ordered mapping source repeats a key
//   - [ErrRowWidth]: a row has the wrong number of values
//   - [ErrEmptyDelimiter]: delimited text needs a non-empty separator
//   - [ErrUnsupportedFormat], [ErrInvalidTemplate], [ErrShape]: rendering
package tabkit
