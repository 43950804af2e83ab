package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// NameField is injected into every boundary record and equals its key.
const NameField = "name"

// ErrNotObject is returned when a JSON value that must be an object is not.
var ErrNotObject = errors.New("value is not a JSON object")

// Attributes is a JSON object that remembers the order fields were first set.
// Values decoded from JSON are kept as json.RawMessage.
type Attributes struct {
	keys   []string
	values map[string]any
}

// NewAttributes returns an empty Attributes.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores value under field. A new field goes last; an existing one keeps
// its position.
func (a *Attributes) Set(field string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}

	if _, ok := a.values[field]; !ok {
		a.keys = append(a.keys, field)
	}

	a.values[field] = value
}

// Get returns the value stored under field.
func (a *Attributes) Get(field string) (any, bool) {
	v, ok := a.values[field]
	return v, ok
}

// Has reports whether field is set.
func (a *Attributes) Has(field string) bool {
	_, ok := a.values[field]
	return ok
}

// Fields returns the field names in order.
func (a *Attributes) Fields() []string {
	return append([]string(nil), a.keys...)
}

// Len returns the number of fields.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// MarshalJSON writes the fields in order. HTML characters are not escaped.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encodeValue(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := encodeValue(&buf, a.values[k]); err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping field order. Nested values are
// kept verbatim.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	a.keys = nil
	a.values = make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}

		a.Set(field, raw)
	}

	_, err = dec.Token()

	return err
}

func encodeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encoder terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
