// Package validator validates models whose fields may be absent, explicitly
// null or present, and reports every violation in a single pass.
//
// The package is built from a few small pieces:
//   - Property: a named value plus its presence state, read fresh per check
//   - Rule: validates one property, returning a Result
//   - Constraint: binds a named property of a model to its rules
//   - Validator: checks a whole model by folding all constraint results
//   - Result: Valid(value) or Invalid(issues); And merges two results
//   - IssueList: ordered, path-addressed failures; the unit of reporting
//
// # Usage
//
//	type User struct {
//	    Name presence.Field[string]
//	    Age  presence.Field[int]
//	}
//
//	var userValidator = validator.New(
//	    validator.On("name", func(u User) presence.Field[string] { return u.Name },
//	        validator.Required[string](), validator.MinLength(4)),
//	    validator.On("age", func(u User) presence.Field[int] { return u.Age },
//	        validator.Required[int](), validator.Minimum(18)),
//	)
//
//	res := userValidator.Validate(user)
//	if !res.IsValid() {
//	    fmt.Println(res.Issues()) // name -> Must be longer than 4 characters; age -> Must be 18 or greater
//	}
//
// # Presence
//
// Format and range rules skip absent properties but reject explicit nulls:
// a missing field is optional, a null one is bad input for a typed
// constraint. Required rejects absence and NotNull rejects explicit null;
// combine them with format rules as needed.
//
// # Nesting
//
// Nested validates a sub-model and prefixes its issue paths with the property
// name. Each and EachValue validate slice elements and map values, producing
// "items.0" and "attrs.key" paths. Lazy defers building a validator until use,
// which makes self-referential schemas possible.
//
// # External issues
//
// FromIssues turns issues gathered elsewhere (for example by package decode)
// into a validator, so parse failures and domain violations end up in one
// report:
//
//	report := validator.FromIssues[User](decodeIssues).And(userValidator).Validate(user)
//
// # Error Handling
//
// Validation content is never returned as an error. ProceedIfValid converts
// an invalid result into *InvalidError, which matches ErrValidationFailed via
// errors.Is and exposes the issues through ExtractIssues. Misuse at setup time,
// such as an unknown property name or an empty rule list, panics immediately.
package validator
