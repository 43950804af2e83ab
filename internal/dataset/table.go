package dataset

import (
	"bytes"
	"fmt"
)

// Table maps canonical keys to values and remembers the order keys were
// first inserted.
type Table[V any] struct {
	keys   []string
	values map[string]V
}

// NewTable returns an empty Table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{values: make(map[string]V)}
}

// Put stores v under key. On collision the new value wins and the key keeps
// its original position. Put reports whether key was already present.
func (t *Table[V]) Put(key string, v V) bool {
	if t.values == nil {
		t.values = make(map[string]V)
	}

	_, existed := t.values[key]
	if !existed {
		t.keys = append(t.keys, key)
	}

	t.values[key] = v

	return existed
}

// Get returns the value stored under key.
func (t *Table[V]) Get(key string) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is present.
func (t *Table[V]) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (t *Table[V]) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of keys.
func (t *Table[V]) Len() int {
	return len(t.keys)
}

// Each calls fn for every entry in insertion order, stopping if fn returns false.
func (t *Table[V]) Each(fn func(key string, v V) bool) {
	for _, k := range t.keys {
		if !fn(k, t.values[k]) {
			return
		}
	}
}

// MarshalJSON writes the table as a JSON object in insertion order.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encodeValue(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := encodeValue(&buf, t.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Boundaries is the base table of boundary records.
type Boundaries = Table[*Attributes]

// NewBoundaries returns an empty boundary table.
func NewBoundaries() *Boundaries {
	return NewTable[*Attributes]()
}
