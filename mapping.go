package tabkit

import (
	"io"
	"strings"
)

// MappingToDelimitedText renders m as delimited text with a keyName/valueName
// header and one line per entry, ordered by key. The output equals
// ToDelimitedText(MappingToTable(m, keyName, valueName), delimiter) but no
// table is built.
func MappingToDelimitedText[K, V Scalar](m map[K]V, delimiter, keyName, valueName string) string {
	return PairsToDelimitedText(SortedPairs(m), delimiter, keyName, valueName)
}

// PairsToDelimitedText is [MappingToDelimitedText] for an ordered source.
// Pairs are written as given; repeated keys are not detected, use
// [PairsToTable] when they must be rejected.
func PairsToDelimitedText[K, V Scalar](pairs []Pair[K, V], delimiter, keyName, valueName string) string {
	var sb strings.Builder
	_ = WriteMapping(&sb, pairs, delimiter, keyName, valueName) // strings.Builder never fails
	return sb.String()
}

// WriteMapping writes the delimited text form of pairs to w.
func WriteMapping[K, V Scalar](w io.Writer, pairs []Pair[K, V], delimiter, keyName, valueName string) error {
	if err := writeLine(w, []string{keyName, valueName}, delimiter); err != nil {
		return err
	}
	fields := make([]string, 2)
	for _, p := range pairs {
		fields[0], fields[1] = formatScalar(p.Key), formatScalar(p.Value)
		if err := writeLine(w, fields, delimiter); err != nil {
			return err
		}
	}
	return nil
}
