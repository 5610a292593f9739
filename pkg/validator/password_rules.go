package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	// Frequently compromised passwords, compared case-insensitively
	commonPasswords = map[string]bool{
		"password":    true,
		"password1":   true,
		"password123": true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"1234567890":  true,
		"qwerty":      true,
		"qwerty123":   true,
		"abc123":      true,
		"letmein":     true,
		"welcome":     true,
		"admin":       true,
		"admin123":    true,
		"iloveyou":    true,
		"trustno1":    true,
		"1q2w3e4r":    true,
		"1qaz2wsx":    true,
		"passw0rd":    true,
		"p@ssw0rd":    true,
	}
)

// PasswordPolicy describes password complexity. Fields carry env tags so a
// service can load its policy with config.Load.
type PasswordPolicy struct {
	MinLength        int  `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
	MaxLength        int  `env:"PASSWORD_MAX_LENGTH" envDefault:"128"`
	RequireUppercase bool `env:"PASSWORD_REQUIRE_UPPERCASE" envDefault:"true"`
	RequireLowercase bool `env:"PASSWORD_REQUIRE_LOWERCASE" envDefault:"true"`
	RequireDigits    bool `env:"PASSWORD_REQUIRE_DIGITS" envDefault:"true"`
	RequireSpecial   bool `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"false"`
	MinCharClasses   int  `env:"PASSWORD_MIN_CHAR_CLASSES" envDefault:"3"` // Minimum number of different character classes required
	RejectCommon     bool `env:"PASSWORD_REJECT_COMMON" envDefault:"true"`
}

// DefaultPasswordPolicy returns the same values as the env defaults:
// 8-128 chars, upper, lower and digit required, 3+ character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		MinCharClasses:   3,
		RejectCommon:     true,
	}
}

// Allows reports whether value satisfies the policy.
func (p PasswordPolicy) Allows(value string) bool {
	n := utf8.RuneCountInString(value)
	if n < p.MinLength || (p.MaxLength > 0 && n > p.MaxLength) {
		return false
	}
	if p.RejectCommon && commonPasswords[strings.ToLower(value)] {
		return false
	}

	hasUpper := uppercaseRegex.MatchString(value)
	hasLower := lowercaseRegex.MatchString(value)
	hasDigit := digitRegex.MatchString(value)
	hasSpecial := specialCharRegex.MatchString(value)

	if p.RequireUppercase && !hasUpper {
		return false
	}
	if p.RequireLowercase && !hasLower {
		return false
	}
	if p.RequireDigits && !hasDigit {
		return false
	}
	if p.RequireSpecial && !hasSpecial {
		return false
	}

	classes := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			classes++
		}
	}
	return classes >= p.MinCharClasses
}

// Password requires value to satisfy policy.
func Password(policy PasswordPolicy) Rule[string] {
	return WhenPresent(policy.Allows,
		"validation.password",
		fmt.Sprintf("Must be %d-%d characters with required character types", policy.MinLength, policy.MaxLength),
		map[string]any{
			"min_length":        policy.MinLength,
			"max_length":        policy.MaxLength,
			"require_uppercase": policy.RequireUppercase,
			"require_lowercase": policy.RequireLowercase,
			"require_digits":    policy.RequireDigits,
			"require_special":   policy.RequireSpecial,
			"min_char_classes":  policy.MinCharClasses,
		},
	)
}
