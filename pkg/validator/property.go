package validator

import (
	"fmt"

	"github.com/dmitrymomot/patchkit/pkg/presence"
)

// Property is a named, presence-aware value read from a model for one check.
type Property[T any] struct {
	name  string
	value T
	state presence.State
}

// PropertyOf builds a property from a presence field.
func PropertyOf[T any](name string, f presence.Field[T]) Property[T] {
	return Property[T]{name: name, value: f.Value(), state: f.State()}
}

// Assigned builds a property for a plain value. Nil-like values are treated
// as assigned null.
func Assigned[T any](name string, v T) Property[T] {
	return PropertyOf(name, presence.Of(v))
}

// Absent builds a property that was never assigned.
func Absent[T any](name string) Property[T] {
	return Property[T]{name: name}
}

func (p Property[T]) Name() string { return p.name }

func (p Property[T]) State() presence.State { return p.state }

// IsAbsent reports whether the property was never assigned.
func (p Property[T]) IsAbsent() bool { return p.state == presence.StateUnset }

// IsEmpty reports whether the property holds no value, assigned or not.
func (p Property[T]) IsEmpty() bool { return p.state != presence.StateValue }

// IsPresent reports whether the property was assigned a non-null value.
func (p Property[T]) IsPresent() bool { return p.state == presence.StateValue }

// Value returns the value, or ErrNoValue when the property is empty.
func (p Property[T]) Value() (T, error) {
	if p.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: property %q", ErrNoValue, p.name)
	}
	return p.value, nil
}

// MustValue is like Value but panics on an empty property.
func (p Property[T]) MustValue() T {
	v, err := p.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Rename returns the same property under another name.
func (p Property[T]) Rename(name string) Property[T] {
	p.name = name
	return p
}

func (p Property[T]) String() string {
	if p.IsEmpty() {
		return "null"
	}
	return fmt.Sprint(p.value)
}
