package tabkit

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrTypeValidation reports a value or type outside the scalar kinds a
	// table can hold.
	ErrTypeValidation = errors.New("type validation failed")

	// ErrColumnNotFound reports a column name absent from a table's schema.
	ErrColumnNotFound = errors.New("column not found")

	// ErrNoRecord reports that no row matched a lookup.
	ErrNoRecord = errors.New("no record")

	// ErrDuplicateColumn reports two columns sharing a name.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrEmptyColumnName reports a column without a name.
	ErrEmptyColumnName = errors.New("empty column name")

	// ErrDuplicateKey reports a key that appears twice in a mapping source.
	ErrDuplicateKey = errors.New("duplicate mapping key")

	// ErrRowWidth reports a row whose value count differs from the column
	// count.
	ErrRowWidth = errors.New("row width mismatch")

	// ErrEmptyDelimiter reports an empty field separator.
	ErrEmptyDelimiter = errors.New("empty delimiter")

	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")

	// ErrShape reports a table whose column count does not fit the format,
	// such as ENV (two columns) or List (one column).
	ErrShape = errors.New("unsupported table shape")
)
