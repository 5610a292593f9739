package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is matched by every *InvalidError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoValue is returned when reading the value of an absent or null property.
	ErrNoValue = errors.New("no value present")

	// ErrUnknownProperty is returned when a model has no accessor for a property name.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrPropertyType is returned when an accessor yields a different type than requested.
	ErrPropertyType = errors.New("property type mismatch")

	// ErrNoRules is raised when a rule combinator receives no rules.
	ErrNoRules = errors.New("at least one rule is required")
)

// InvalidError is returned by ProceedIfValid for an invalid subject.
type InvalidError struct {
	Issues IssueList
}

// Error summarizes every issue as "path -> message, path -> message".
func (e *InvalidError) Error() string {
	if len(e.Issues) == 0 {
		return ErrValidationFailed.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, e.Issues.join(", "))
}

func (e *InvalidError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ExtractIssues returns the issues carried by an *InvalidError anywhere in err's chain.
func ExtractIssues(err error) IssueList {
	if err == nil {
		return nil
	}
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		return invalid.Issues
	}
	return nil
}

// IsValidationError reports whether err carries validation issues.
func IsValidationError(err error) bool {
	var invalid *InvalidError
	return errors.As(err, &invalid)
}
