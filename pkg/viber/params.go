package viber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Params represents an ordered set of request fields.
// The zero value is an empty set ready to use.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates a new set of fields from the given key/value pairs.
func NewParams(fields ...Field) *Params {
	p := &Params{}
	for _, f := range fields {
		p.Set(f.Key, f.Value)
	}

	return p
}

// Field represents a single request field.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand for building a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Set stores the value under the given key. An existing key keeps its position.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}

	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value

	return p
}

// Get returns the value stored under the given key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}

	value, ok := p.values[key]
	return value, ok
}

// Has reports whether the key is present, even with an absent value.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes the key.
func (p *Params) Delete(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}

	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Len returns the number of fields.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

// Clone returns a shallow copy.
func (p *Params) Clone() *Params {
	clone := &Params{}
	if p == nil {
		return clone
	}

	for _, key := range p.keys {
		clone.Set(key, p.values[key])
	}

	return clone
}

// Compact removes every field whose value is absent and returns p.
func (p *Params) Compact() *Params {
	if p == nil {
		return p
	}

	for _, key := range p.Keys() {
		if isAbsent(p.values[key]) {
			p.Delete(key)
		}
	}

	return p
}

// Merge layers the given sets on top of each other into a new set.
// Later layers override earlier ones; a key keeps the position of its first appearance.
func Merge(layers ...*Params) *Params {
	merged := &Params{}
	for _, layer := range layers {
		if layer == nil {
			continue
		}

		for _, key := range layer.keys {
			merged.Set(key, layer.values[key])
		}
	}

	return merged
}

// isAbsent reports whether the value means "not set" on the wire.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// MarshalJSON encodes fields as a JSON object preserving insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", key, err)
		}

		encodedValue, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal value of %q: %w", key, err)
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedValue)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping its key order.
// Nested objects become *Params, arrays become []any.
func (p *Params) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("read opening token: %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", token)
	}

	parsed, err := decodeObject(decoder)
	if err != nil {
		return err
	}

	*p = *parsed

	return nil
}

func decodeObject(decoder *json.Decoder) (*Params, error) {
	p := &Params{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return nil, fmt.Errorf("decode value of %q: %w", key, err)
		}

		p.Set(key, value)
	}

	// closing '}'
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("read closing token: %w", err)
	}

	return p, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		return decodeObject(decoder)
	case '[':
		values := make([]any, 0)
		for decoder.More() {
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}

			values = append(values, value)
		}

		// closing ']'
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		return values, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
