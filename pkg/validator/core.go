package validator

import "strings"

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule validates one property. Rules are pure and safe to share.
type Rule[T any] func(p Property[T]) Result[Property[T]]

// Apply runs the rule against p. A nil rule accepts everything.
func (r Rule[T]) Apply(p Property[T]) Result[Property[T]] {
	if r == nil {
		return Valid(p)
	}
	return r(p)
}

// And runs both rules against the same property and merges their results,
// so every violation surfaces even when they concern one field.
func (r Rule[T]) And(other Rule[T]) Rule[T] {
	return func(p Property[T]) Result[Property[T]] {
		return r.Apply(p).And(other.Apply(p))
	}
}

// All combines rules with And in order. It panics when given no rules.
func All[T any](rules ...Rule[T]) Rule[T] {
	if len(rules) == 0 {
		panic(ErrNoRules)
	}
	combined := rules[0]
	for _, next := range rules[1:] {
		combined = combined.And(next)
	}
	return combined
}

// Check builds a rule from a predicate. On failure it emits one issue at the
// property's name. The message is template with "{value}" replaced by the
// property's value, or "null" when the property is empty.
func Check[T any](pred func(Property[T]) bool, code, template string, params map[string]any) Rule[T] {
	return func(p Property[T]) Result[Property[T]] {
		if pred(p) {
			return Valid(p)
		}
		return Invalid[Property[T]](IssueList{{
			Path:    p.Name(),
			Code:    code,
			Message: strings.ReplaceAll(template, "{value}", p.String()),
			Params:  params,
		}})
	}
}

// WhenPresent builds a rule with the presence-conditional policy used by every
// format and range rule: an absent property is valid, anything else must be
// non-empty and satisfy pred. An explicit null therefore fails.
func WhenPresent[T any](pred func(T) bool, code, template string, params map[string]any) Rule[T] {
	return Check(func(p Property[T]) bool {
		if p.IsAbsent() {
			return true
		}
		if p.IsEmpty() {
			return false
		}
		return pred(p.value)
	}, code, template, params)
}

// Func adapts a plain predicate over T into a presence-conditional rule with a
// custom message.
func Func[T any](code, message string, pred func(T) bool) Rule[T] {
	return WhenPresent(pred, code, message, nil)
}

// Required fails when the property was never assigned, whatever its value.
func Required[T any]() Rule[T] {
	return Check(func(p Property[T]) bool {
		return !p.IsAbsent()
	}, "validation.required", "Is required", nil)
}

// NotNull fails when the property was assigned null.
func NotNull[T any]() Rule[T] {
	return Check(func(p Property[T]) bool {
		return p.IsAbsent() || !p.IsEmpty()
	}, "validation.not_null", "Must not be null", nil)
}
