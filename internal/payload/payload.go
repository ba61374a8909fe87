// Package payload provides a schema-tolerant accessor over decoded JSON
// objects. Upstream responses are not validated against a schema; consumers
// read the fields they need and every getter substitutes a documented default
// when a field is absent or has an unexpected type, so a missing key never
// panics downstream.
package payload

import (
	"encoding/json"
	"fmt"
	"io"
)

// Payload is a decoded JSON object. A nil Payload behaves as an empty object:
// every getter returns its default.
type Payload map[string]any

// Decode reads a JSON object from r.
func Decode(r io.Reader) (Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON object from raw bytes. A top-level value that is not
// an object is an error; anything inside it is tolerated.
func Parse(data []byte) (Payload, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return Payload(obj), nil
}

// Has reports whether the key is present, regardless of its type.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Float returns the numeric value at key, or def when the key is absent or
// not a number. encoding/json decodes every JSON number as float64.
func (p Payload) Float(key string, def float64) float64 {
	if v, ok := p[key].(float64); ok {
		return v
	}
	return def
}

// Int returns the value at key truncated to int, or def.
func (p Payload) Int(key string, def int) int {
	if v, ok := p[key].(float64); ok {
		return int(v)
	}
	return def
}

// String returns the string value at key, or def.
func (p Payload) String(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Object returns the nested object at key. Absent or mistyped fields yield
// an empty Payload, so lookups chain without nil checks.
func (p Payload) Object(key string) Payload {
	if v, ok := p[key].(map[string]any); ok {
		return Payload(v)
	}
	return Payload{}
}

// Objects returns the list of objects at key, or nil when the field is
// absent, not a list, or contains no objects. Non-object elements are
// skipped.
func (p Payload) Objects(key string) []Payload {
	list, ok := p[key].([]any)
	if !ok {
		return nil
	}

	out := make([]Payload, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Payload(obj))
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FirstObject returns the first object in the list at key, or an empty
// Payload. OpenWeatherMap wraps the condition record in a one-element list.
func (p Payload) FirstObject(key string) Payload {
	if objs := p.Objects(key); objs != nil {
		return objs[0]
	}
	return Payload{}
}
