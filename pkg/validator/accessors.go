package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/patchkit/pkg/presence"
)

// Accessors is an explicit name -> getter table for a model type. It replaces
// runtime field lookup: every readable property is registered up front.
type Accessors[M any] struct {
	model   string
	getters map[string]any
	order   []string
}

// NewAccessors returns an empty table for M.
func NewAccessors[M any]() *Accessors[M] {
	return &Accessors[M]{
		model:   reflect.TypeFor[M]().String(),
		getters: make(map[string]any),
	}
}

// Register adds a getter for name. Registering the same name twice panics.
func Register[M, T any](a *Accessors[M], name string, get func(M) presence.Field[T]) *Accessors[M] {
	if get == nil {
		panic(fmt.Sprintf("validator: nil getter for %s.%s", a.model, name))
	}
	if _, dup := a.getters[name]; dup {
		panic(fmt.Sprintf("validator: property %s.%s registered twice", a.model, name))
	}
	a.getters[name] = get
	a.order = append(a.order, name)
	return a
}

// Names lists the registered properties in registration order.
func (a *Accessors[M]) Names() []string {
	return append([]string(nil), a.order...)
}

// Lookup reads property name from model. An optional label renames the
// resulting property, so issues can be addressed by a different name than
// the one the getter is stored under.
func Lookup[T, M any](a *Accessors[M], model M, name string, label ...string) (Property[T], error) {
	get, err := getter[T](a, name)
	if err != nil {
		return Property[T]{}, err
	}
	propName := name
	if len(label) > 0 && label[0] != "" {
		propName = label[0]
	}
	return PropertyOf(propName, get(model)), nil
}

func getter[T, M any](a *Accessors[M], name string) (func(M) presence.Field[T], error) {
	raw, ok := a.getters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no property %q", ErrUnknownProperty, a.model, name)
	}
	get, ok := raw.(func(M) presence.Field[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is not a %s", ErrPropertyType, a.model, name, reflect.TypeFor[T]())
	}
	return get, nil
}
