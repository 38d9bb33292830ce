package tabkit

import (
	"slices"
)

// SequenceColumn names the single column built by [SequenceToTable].
const SequenceColumn = "Id"

// Pair is one key/value entry of an ordered mapping.
type Pair[K, V Scalar] struct {
	Key   K
	Value V
}

// SequenceToTable builds a single-column table named [SequenceColumn] with
// one row per value. An empty slice yields a table with zero rows.
func SequenceToTable[T Scalar](values []T) *Table {
	return SeqToTable(slices.Values(values))
}

// MappingToTable builds a two-column table from m, one row per entry,
// ordered by key. It fails with [ErrDuplicateColumn] when keyName equals
// valueName and with [ErrEmptyColumnName] when either is empty.
func MappingToTable[K, V Scalar](m map[K]V, keyName, valueName string) (*Table, error) {
	return PairsToTable(SortedPairs(m), keyName, valueName)
}

// PairsToTable is [MappingToTable] for an ordered source; rows follow the
// order of pairs. A repeated key fails with [ErrDuplicateKey].
func PairsToTable[K, V Scalar](pairs []Pair[K, V], keyName, valueName string) (*Table, error) {
	return Seq2ToTable(pairSeq(pairs), keyName, valueName)
}

// SortedPairs returns the entries of m ordered by key.
func SortedPairs[K, V Scalar](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(pairs, func(a, b Pair[K, V]) int {
		return compareValues(normalizeScalar(a.Key), normalizeScalar(b.Key))
	})
	return pairs
}

func mappingSchema[K, V Scalar](keyName, valueName string) (*schema, error) {
	return newSchema([]Column{
		{Name: keyName, Kind: KindFor[K]()},
		{Name: valueName, Kind: KindFor[V]()},
	})
}
