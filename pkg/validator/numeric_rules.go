package validator

import (
	"fmt"
	"math"
	"reflect"
)

// Minimum requires the value to be >= min.
func Minimum[N Numeric](min N) Rule[N] {
	return WhenPresent(func(v N) bool { return v >= min },
		"validation.minimum",
		fmt.Sprintf("Must be %v or greater", min),
		map[string]any{"min": min},
	)
}

// Maximum requires the value to be <= max.
func Maximum[N Numeric](max N) Rule[N] {
	return WhenPresent(func(v N) bool { return v <= max },
		"validation.maximum",
		fmt.Sprintf("Must be %v or less", max),
		map[string]any{"max": max},
	)
}

// ExclusiveMinimum requires the value to be > min.
func ExclusiveMinimum[N Numeric](min N) Rule[N] {
	return WhenPresent(func(v N) bool { return v > min },
		"validation.exclusive_minimum",
		fmt.Sprintf("Must be greater than %v", min),
		map[string]any{"min": min},
	)
}

// ExclusiveMaximum requires the value to be < max.
func ExclusiveMaximum[N Numeric](max N) Rule[N] {
	return WhenPresent(func(v N) bool { return v < max },
		"validation.exclusive_maximum",
		fmt.Sprintf("Must be less than %v", max),
		map[string]any{"max": max},
	)
}

// MultipleOf requires the value to divide evenly by factor. A zero factor
// panics.
func MultipleOf[N Numeric](factor N) Rule[N] {
	if factor == 0 {
		panic("validator: MultipleOf factor must not be zero")
	}
	return WhenPresent(func(v N) bool { return isMultiple(v, factor) },
		"validation.multiple_of",
		fmt.Sprintf("Must be a multiple of %v", factor),
		map[string]any{"factor": factor},
	)
}

// isMultiple is exact for integer kinds. Floats get an absolute tolerance on
// the quotient, so 0.3 is a multiple of 0.1.
func isMultiple[N Numeric](v, factor N) bool {
	rv, rf := reflect.ValueOf(v), reflect.ValueOf(factor)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()%rf.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()%rf.Uint() == 0
	default:
		q := float64(v) / float64(factor)
		return math.Abs(q-math.Round(q)) <= 1e-9
	}
}
