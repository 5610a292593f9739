package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Nested validates a nested model with v and reports its issues under
// "<property>.<nested path>". Absent and null properties are skipped; pair
// with Required or NotNull to reject them.
func Nested[S any](v Validator[S]) Rule[S] {
	return func(p Property[S]) Result[Property[S]] {
		if p.IsEmpty() {
			return Valid(p)
		}
		return nested(p, v.Validate(p.value).Issues())
	}
}

// Each applies rule to every element of a slice. Element i is reported as
// "<property>.<i>". Absent, null and empty slices are valid.
func Each[E any](rule Rule[E]) Rule[[]E] {
	return func(p Property[[]E]) Result[Property[[]E]] {
		result := Valid(p)
		if p.IsEmpty() {
			return result
		}
		for i, elem := range p.value {
			r := rule.Apply(Assigned(strconv.Itoa(i), elem))
			result = result.And(nested(p, r.Issues()))
		}
		return result
	}
}

// EachValue applies rule to every value of a map. The entry for key k is
// reported as "<property>.<k>". Keys are visited in ascending order so reports
// are stable: numerically for number keys, by text otherwise.
func EachValue[K comparable, V any](rule Rule[V]) Rule[map[K]V] {
	return func(p Property[map[K]V]) Result[Property[map[K]V]] {
		result := Valid(p)
		if p.IsEmpty() {
			return result
		}
		keys := make([]K, 0, len(p.value))
		for k := range p.value {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return keyLess(reflect.ValueOf(keys[i]), reflect.ValueOf(keys[j]))
		})

		for _, k := range keys {
			r := rule.Apply(Assigned(fmt.Sprint(k), p.value[k]))
			result = result.And(nested(p, r.Issues()))
		}
		return result
	}
}

func keyLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	default:
		return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
	}
}

func nested[T any](p Property[T], issues IssueList) Result[Property[T]] {
	return ResultOf(p, issues.Prefixed(p.Name()))
}

// MinItems requires a slice, array or map to hold at least n elements.
func MinItems[C any](n int) Rule[C] {
	return mapOrCollection[C](func(size int) bool { return size >= n },
		"validation.min_items",
		fmt.Sprintf("Must contain at least %d items", n),
		map[string]any{"min": n},
	)
}

// MaxItems requires a slice, array or map to hold at most n elements.
func MaxItems[C any](n int) Rule[C] {
	return mapOrCollection[C](func(size int) bool { return size <= n },
		"validation.max_items",
		fmt.Sprintf("Must contain at most %d items", n),
		map[string]any{"max": n},
	)
}

// mapOrCollection applies a size predicate uniformly to sequences and maps:
// a map is sized by its entries, a slice or array by its elements.
func mapOrCollection[C any](pred func(size int) bool, code, message string, params map[string]any) Rule[C] {
	return WhenPresent(func(v C) bool {
		size, ok := sizeOf(v)
		return ok && pred(size)
	}, code, message, params)
}

func sizeOf(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}
