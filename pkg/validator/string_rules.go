package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MinLength requires at least n characters (runes).
func MinLength(n int) Rule[string] {
	return WhenPresent(func(v string) bool {
		return utf8.RuneCountInString(v) >= n
	},
		"validation.min_length",
		fmt.Sprintf("Must be longer than %d characters", n),
		map[string]any{"min": n},
	)
}

// MaxLength allows at most n characters (runes).
func MaxLength(n int) Rule[string] {
	return WhenPresent(func(v string) bool {
		return utf8.RuneCountInString(v) <= n
	},
		"validation.max_length",
		fmt.Sprintf("Must be shorter than %d characters", n),
		map[string]any{"max": n},
	)
}

// Pattern requires the value to match expr. The expression is compiled once;
// an invalid expression panics.
func Pattern(expr string) Rule[string] {
	re := regexp.MustCompile(expr)
	return WhenPresent(re.MatchString,
		"validation.pattern",
		fmt.Sprintf("Must match %q", expr),
		map[string]any{"pattern": expr},
	)
}

// OneOf requires the value to be one of allowed.
func OneOf[T comparable](allowed ...T) Rule[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return WhenPresent(func(v T) bool {
		_, ok := set[v]
		return ok
	},
		"validation.one_of",
		fmt.Sprintf("Must be one of %v", allowed),
		map[string]any{"allowed": allowed},
	)
}
