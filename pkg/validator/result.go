package validator

// Result is the outcome of checking a subject: Valid(value) or Invalid(issues).
// An invalid result always carries at least one issue.
type Result[T any] struct {
	value  T
	issues IssueList
}

// Valid returns a valid result carrying v.
func Valid[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Invalid returns an invalid result. An empty list yields a valid result with
// the zero value of T.
func Invalid[T any](issues IssueList) Result[T] {
	return Result[T]{issues: issues}
}

// ResultOf returns Valid(v) when issues is empty and Invalid(issues) otherwise.
func ResultOf[T any](v T, issues IssueList) Result[T] {
	return Result[T]{value: v, issues: issues}
}

// Retarget carries r's outcome over to another subject: issues are kept,
// the value is replaced by v.
func Retarget[T, U any](r Result[T], v U) Result[U] {
	return Result[U]{value: v, issues: r.issues}
}

func (r Result[T]) IsValid() bool { return len(r.issues) == 0 }

func (r Result[T]) IsInvalid() bool { return len(r.issues) > 0 }

// Value returns the carried value. For an invalid result it is whatever the
// producer attached, usually the subject that failed.
func (r Result[T]) Value() T { return r.value }

// Issues returns the issues of an invalid result, nil otherwise.
func (r Result[T]) Issues() IssueList { return r.issues }

// And merges two results:
//   - both valid: valid with other's value
//   - one invalid: that result
//   - both invalid: r's issues followed by other's
func (r Result[T]) And(other Result[T]) Result[T] {
	switch {
	case r.IsValid():
		return other
	case other.IsValid():
		return r
	default:
		return Result[T]{value: other.value, issues: r.issues.Concat(other.issues)}
	}
}

// Err returns nil for a valid result and an *InvalidError otherwise.
func (r Result[T]) Err() error {
	if r.IsValid() {
		return nil
	}
	return &InvalidError{Issues: r.issues}
}

func (r Result[T]) String() string {
	if r.IsValid() {
		return "Valid"
	}
	return "Invalid(" + r.issues.String() + ")"
}
