package validator

import (
	"fmt"

	"github.com/dmitrymomot/patchkit/pkg/presence"
)

// Constraint binds one named property of M to the rules that must hold for it.
type Constraint[M any] struct {
	name  string
	check func(M) Result[M]
}

// Name returns the property name the constraint reports issues under.
func (c Constraint[M]) Name() string { return c.name }

// Check evaluates the constraint against model.
func (c Constraint[M]) Check(model M) Result[M] {
	return c.check(model)
}

// On binds the presence field returned by get to the conjunction of rules.
// It panics when no rules are given.
func On[M, T any](name string, get func(M) presence.Field[T], rules ...Rule[T]) Constraint[M] {
	if get == nil {
		panic(fmt.Sprintf("validator: nil getter for property %q", name))
	}
	rule := All(rules...)
	return Constraint[M]{
		name: name,
		check: func(model M) Result[M] {
			return Retarget(rule.Apply(PropertyOf(name, get(model))), model)
		},
	}
}

// OnValue binds a plain Go value. Plain values are always assigned, so
// Required never fails for them; nil-like values count as assigned null.
func OnValue[M, T any](name string, get func(M) T, rules ...Rule[T]) Constraint[M] {
	return On(name, func(model M) presence.Field[T] {
		return presence.Of(get(model))
	}, rules...)
}

// OnField binds a property registered in an accessor table. An unknown name or
// a getter of a different type panics here, at construction.
func OnField[T, M any](a *Accessors[M], name string, rules ...Rule[T]) Constraint[M] {
	return OnFieldAs(a, name, name, rules...)
}

// OnFieldAs is OnField reporting issues under label instead of the stored
// name. An empty label falls back to name.
func OnFieldAs[T, M any](a *Accessors[M], name, label string, rules ...Rule[T]) Constraint[M] {
	get, err := getter[T](a, name)
	if err != nil {
		panic(err)
	}
	if label == "" {
		label = name
	}
	return On(label, get, rules...)
}

// Validator checks a whole model. The zero value accepts everything.
type Validator[M any] struct {
	run func(M) Result[M]
}

// New builds a validator from constraints. Every constraint is evaluated and
// the results are merged in declaration order, so the report lists every
// violation of every field. It panics when no constraints are given.
func New[M any](constraints ...Constraint[M]) Validator[M] {
	if len(constraints) == 0 {
		panic(ErrNoRules)
	}
	cs := append([]Constraint[M](nil), constraints...)
	return Validator[M]{run: func(model M) Result[M] {
		result := Valid(model)
		for _, c := range cs {
			result = result.And(c.Check(model))
		}
		return result
	}}
}

// FromIssues lifts a pre-built issue list, typically produced while decoding,
// into a validator that reports exactly those issues for any model.
func FromIssues[M any](issues IssueList) Validator[M] {
	list := append(IssueList(nil), issues...)
	return Validator[M]{run: func(model M) Result[M] {
		return ResultOf(model, list)
	}}
}

// FromFunc wraps a model-level check, e.g. a cross-field rule.
func FromFunc[M any](fn func(M) IssueList) Validator[M] {
	if fn == nil {
		panic("validator: nil check func")
	}
	return Validator[M]{run: func(model M) Result[M] {
		return ResultOf(model, fn(model))
	}}
}

// Lazy defers building the validator until it is needed. The supplier is
// called on every validation, which lets a validator refer to itself:
//
//	func nodeValidator() validator.Validator[*Node] {
//	    return validator.New(
//	        validator.On("child", (*Node).GetChild, validator.Nested(validator.Lazy(nodeValidator))),
//	    )
//	}
//
// Recursion ends where the data ends, so the model must be a tree.
func Lazy[M any](supplier func() Validator[M]) Validator[M] {
	if supplier == nil {
		panic("validator: nil supplier")
	}
	return Validator[M]{run: func(model M) Result[M] {
		return supplier().Validate(model)
	}}
}

// And runs v then other against the same model and merges both reports,
// v's issues first.
func (v Validator[M]) And(other Validator[M]) Validator[M] {
	return Validator[M]{run: func(model M) Result[M] {
		return v.Validate(model).And(other.Validate(model))
	}}
}

// Validate checks model. It never fails for content reasons; violations are
// returned as data in the result.
func (v Validator[M]) Validate(model M) Result[M] {
	if v.run == nil {
		return Valid(model)
	}
	return v.run(model)
}

// ProceedIfValid returns model when it is valid and an *InvalidError listing
// every issue otherwise.
func (v Validator[M]) ProceedIfValid(model M) (M, error) {
	return v.ProceedIfValidWith(model, nil)
}

// ProceedIfValidWith is ProceedIfValid with a custom error factory.
// A nil factory, or one returning nil, falls back to *InvalidError.
func (v Validator[M]) ProceedIfValidWith(model M, factory func(Result[M]) error) (M, error) {
	result := v.Validate(model)
	if result.IsValid() {
		return result.Value(), nil
	}
	var err error
	if factory != nil {
		err = factory(result)
	}
	if err == nil {
		err = result.Err()
	}
	var zero M
	return zero, err
}
