package models

import "encoding/json"

// Opt is a tri-state field for PATCH payloads. A key that is absent from the
// request body leaves Set false and the stored value untouched. An explicit
// JSON null sets Null, which clears the column when it is nullable. Anything
// else decodes into Value.
type Opt[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Some returns an Opt carrying a value, mainly for tests and internal callers.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Value: v}
}

// Null returns an Opt carrying an explicit null.
func Null[T any]() Opt[T] {
	return Opt[T]{Set: true, Null: true}
}
