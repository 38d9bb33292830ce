package tabkit

import (
	"fmt"
	"iter"
	"slices"
)

// SeqToTable builds a single-column table named [SequenceColumn] from the
// values yielded by seq. An empty sequence yields a table with zero rows.
func SeqToTable[T Scalar](seq iter.Seq[T]) *Table {
	s, _ := newSchema([]Column{{Name: SequenceColumn, Kind: KindFor[T]()}}) // one column cannot collide
	t := &Table{schema: s}
	for v := range seq {
		t.rows = append(t.rows, []any{normalizeScalar(v)})
	}
	return t
}

// ChanToTable is [SeqToTable] over a channel. It returns once ch is closed.
func ChanToTable[T Scalar](ch <-chan T) *Table {
	return SeqToTable(chanToIter(ch))
}

// Seq2ToTable builds a two-column key/value table from seq, keeping the
// order in which pairs are yielded. It fails with [ErrDuplicateColumn] when
// keyName equals valueName and with [ErrDuplicateKey] when a key is yielded
// twice.
func Seq2ToTable[K, V Scalar](seq iter.Seq2[K, V], keyName, valueName string) (*Table, error) {
	s, err := mappingSchema[K, V](keyName, valueName)
	if err != nil {
		return nil, err
	}
	t := &Table{schema: s}
	seen := make(map[any]struct{})
	for k, v := range seq {
		key := normalizeScalar(k)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, formatValue(key))
		}
		seen[key] = struct{}{}
		t.rows = append(t.rows, []any{key, normalizeScalar(v)})
	}
	return t, nil
}

// All yields each row with its index. The rows are copies.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		s := t.layout()
		for i := range t.Len() {
			if !yield(i, Row{schema: s, values: slices.Clone(t.rows[i])}) {
				return
			}
		}
	}
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func pairSeq[K, V Scalar](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
