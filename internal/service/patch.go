package service

import (
	"encoding/json"
)

// Optional marks whether a field was present in a partial update. A JSON null
// counts as present and decodes to the zero value of T.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON is only invoked for keys that appear in the payload
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes the wrapped value, or null when absent
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
