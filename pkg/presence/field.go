package presence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// State describes whether a field was assigned and with what.
type State uint8

const (
	// StateUnset means the field was never assigned.
	StateUnset State = iota
	// StateNull means the field was explicitly assigned null.
	StateNull
	// StateValue means the field holds a non-null value.
	StateValue
)

func (s State) String() string {
	switch s {
	case StateUnset:
		return "unset"
	case StateNull:
		return "null"
	case StateValue:
		return "value"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Field is a value that remembers whether it was assigned.
// The zero value is Unset.
type Field[T any] struct {
	value T
	state State
}

// Of returns a field holding v. Nil pointers, maps, slices and interfaces
// collapse to Null.
func Of[T any](v T) Field[T] {
	if IsNil(v) {
		return Field[T]{state: StateNull}
	}
	return Field[T]{value: v, state: StateValue}
}

// Null returns a field explicitly assigned null.
func Null[T any]() Field[T] {
	return Field[T]{state: StateNull}
}

// FromPtr returns Null for a nil pointer and the pointed value otherwise.
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Of(*p)
}

func (f Field[T]) State() State { return f.state }

// IsSet reports whether the field was assigned, null or not.
func (f Field[T]) IsSet() bool { return f.state != StateUnset }

func (f Field[T]) IsNull() bool { return f.state == StateNull }

// IsPresent reports whether the field holds a non-null value.
func (f Field[T]) IsPresent() bool { return f.state == StateValue }

// IsZero reports whether the field is Unset, so `omitzero` drops it on encode.
func (f Field[T]) IsZero() bool { return f.state == StateUnset }

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == StateValue
}

// Value returns the held value or the zero value of T.
func (f Field[T]) Value() T { return f.value }

// Or returns the held value, or def when the field is not present.
func (f Field[T]) Or(def T) T {
	if f.state == StateValue {
		return f.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when not present.
func (f Field[T]) Ptr() *T {
	if f.state != StateValue {
		return nil
	}
	v := f.value
	return &v
}

// ApplyTo applies the field to dst with JSON Merge Patch semantics:
// Unset leaves dst alone, Null resets it to the zero value, Value overwrites it.
func (f Field[T]) ApplyTo(dst *T) {
	if dst == nil {
		return
	}
	switch f.state {
	case StateNull:
		var zero T
		*dst = zero
	case StateValue:
		*dst = f.value
	}
}

func (f Field[T]) String() string {
	switch f.state {
	case StateUnset:
		return "<unset>"
	case StateNull:
		return "null"
	default:
		return fmt.Sprint(f.value)
	}
}

// MarshalJSON encodes Unset and Null as null. Pair with `omitzero` to omit unset fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != StateValue {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what makes an absent key stay Unset.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.SetNull()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Set(v)
	return nil
}

// UnmarshalYAML decodes a non-null node. yaml.v3 never hands null nodes to
// unmarshallers, so an explicit null stays Unset here; decode.YAML tells the
// two apart.
func (f *Field[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	f.Set(v)
	return nil
}

// Set assigns v, collapsing nil-like values to Null.
func (f *Field[T]) Set(v T) { *f = Of(v) }

// SetNull assigns null.
func (f *Field[T]) SetNull() { *f = Field[T]{state: StateNull} }

// Clear returns the field to Unset.
func (f *Field[T]) Clear() { *f = Field[T]{} }

// NewTarget returns a pointer to a fresh T for a decoder to fill.
func (f *Field[T]) NewTarget() any { return new(T) }

// AssignFrom assigns the value behind a pointer obtained from NewTarget.
func (f *Field[T]) AssignFrom(target any) {
	p, ok := target.(*T)
	if !ok {
		panic(fmt.Sprintf("presence: AssignFrom got %T, want %T", target, p))
	}
	f.Set(*p)
}

// Assignable is implemented by *Field[T]. Decoders use it to fill a field
// without knowing T.
type Assignable interface {
	SetNull()
	NewTarget() any
	AssignFrom(target any)
}

var _ Assignable = (*Field[int])(nil)

// IsNil reports whether v is nil or a nil pointer, map, slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
