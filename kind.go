package tabkit

import (
	"cmp"
	"fmt"
	"reflect"
	"strconv"
)

// Kind is the scalar kind of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
)

var kindNames = [...]string{
	KindString: "string",
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindBool:   "bool",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Numeric reports whether values of kind k are numbers.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindUint || k == KindFloat
}

func (k Kind) valid() bool {
	return k >= KindString && k <= KindBool
}

// Scalar is the closed set of types the generic converters accept. Runes and
// bytes are integers and land in KindInt and KindUint columns.
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// KindOf reports the kind of a scalar value. Nil, structs, slices, maps,
// pointers and every other non-scalar fail with [ErrTypeValidation].
func KindOf(v any) (Kind, error) {
	_, k, err := normalize(v)
	return k, err
}

// KindFor returns the kind that values of type T are stored as.
func KindFor[T Scalar]() Kind {
	var zero T
	_, k, _ := normalize(zero)
	return k
}

// normalize converts a scalar to its storage representation: int64, uint64,
// float64, bool or string.
func normalize(v any) (any, Kind, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), KindString, nil
	case reflect.Bool:
		return rv.Bool(), KindBool, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), KindInt, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), KindUint, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), KindFloat, nil
	case reflect.Invalid:
		return nil, 0, fmt.Errorf("%w: nil is not a scalar", ErrTypeValidation)
	default:
		return nil, 0, fmt.Errorf("%w: %T is not a scalar", ErrTypeValidation, v)
	}
}

// normalizeNullable is normalize with nil passed through as the null marker.
func normalizeNullable(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	nv, _, err := normalize(v)
	return nv, err
}

func normalizeScalar[T Scalar](v T) any {
	nv, _, _ := normalize(v)
	return nv
}

// formatValue renders a stored value as text. Null renders empty.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func formatScalar[T Scalar](v T) string {
	return formatValue(normalizeScalar(v))
}

// equalValues compares two stored values. Numbers compare by numeric value
// across int64, uint64 and float64; nil equals only nil.
func equalValues(a, b any) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case uint64:
			return x >= 0 && uint64(x) == y
		case float64:
			return float64(x) == y
		}
	case uint64:
		switch y := b.(type) {
		case uint64:
			return x == y
		case int64:
			return y >= 0 && uint64(y) == x
		case float64:
			return float64(x) == y
		}
	case float64:
		switch y := b.(type) {
		case float64:
			return x == y
		case int64:
			return x == float64(y)
		case uint64:
			return x == float64(y)
		}
	}
	return false
}

// compareValues orders two stored values of the same kind. False sorts
// before true.
func compareValues(a, b any) int {
	switch x := a.(type) {
	case string:
		y, _ := b.(string)
		return cmp.Compare(x, y)
	case int64:
		y, _ := b.(int64)
		return cmp.Compare(x, y)
	case uint64:
		y, _ := b.(uint64)
		return cmp.Compare(x, y)
	case float64:
		y, _ := b.(float64)
		return cmp.Compare(x, y)
	case bool:
		y, _ := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
	return 0
}
