package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/patchkit/pkg/presence"
	"github.com/dmitrymomot/patchkit/pkg/validator"
)

func assertStrings(t *testing.T, rule validator.Rule[string], code string, valid, invalid []string) {
	t.Helper()

	for _, v := range valid {
		res := rule.Apply(validator.Assigned("f", v))
		assert.True(t, res.IsValid(), "should be valid: %q", v)
	}
	for _, v := range invalid {
		res := rule.Apply(validator.Assigned("f", v))
		if assert.False(t, res.IsValid(), "should be invalid: %q", v) {
			assert.Equal(t, code, res.Issues()[0].Code)
		}
	}

	assert.True(t, rule.Apply(validator.Absent[string]("f")).IsValid(), "absent is skipped")
	assert.False(t, rule.Apply(validator.PropertyOf("f", presence.Null[string]())).IsValid(), "null is rejected")
}

func TestEmail(t *testing.T) {
	t.Parallel()

	assertStrings(t, validator.Email(), "validation.email",
		[]string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"1234567890@example.com",
			"email@example-one.com",
		},
		[]string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"missing@domain",
			"Bob <bob@example.com>",
		},
	)
}

func TestHostname(t *testing.T) {
	t.Parallel()

	assertStrings(t, validator.Hostname(), "validation.hostname",
		[]string{"localhost", "example.com", "api-1.example.org", "example.com."},
		[]string{"", "-bad.com", "bad-.com", "under_score.com", "a..b", "has space.com"},
	)
}

func TestIP(t *testing.T) {
	t.Parallel()

	t.Run("ipv4", func(t *testing.T) {
		assertStrings(t, validator.IPv4(), "validation.ipv4",
			[]string{"192.168.0.1", "0.0.0.0", "255.255.255.255"},
			[]string{"", "256.1.1.1", "1.2.3", "::1", "::ffff:1.2.3.4"},
		)
	})

	t.Run("ipv6", func(t *testing.T) {
		assertStrings(t, validator.IPv6(), "validation.ipv6",
			[]string{"::1", "2001:db8::1", "::ffff:192.0.2.1"},
			[]string{"", "192.168.0.1", "2001:db8::g", "not-an-ip"},
		)
	})
}

func TestBinaryEncodings(t *testing.T) {
	t.Parallel()

	t.Run("base64", func(t *testing.T) {
		assertStrings(t, validator.Base64(), "validation.base64",
			[]string{"aGVsbG8=", "", "YWJj"},
			[]string{"aGVsbG8", "not base64!"},
		)
	})

	t.Run("hex binary", func(t *testing.T) {
		assertStrings(t, validator.HexBinary(), "validation.hex_binary",
			[]string{"0aff", "DEADBEEF", ""},
			[]string{"abc", "zz"},
		)
	})
}

func TestUUID(t *testing.T) {
	t.Parallel()

	assertStrings(t, validator.UUID(), "validation.uuid",
		[]string{uuid.NewString(), "123e4567-e89b-12d3-a456-426614174000"},
		[]string{"", "not-a-uuid", "123e4567e89b12d3a456426614174000", "123e4567-e89b-12d3-a456-42661417400z"},
	)

	t.Run("non nil uuid", func(t *testing.T) {
		rule := validator.NonNilUUID()
		assert.True(t, rule.Apply(validator.Assigned("id", uuid.New())).IsValid())
		assert.False(t, rule.Apply(validator.Assigned("id", uuid.Nil)).IsValid())
	})
}

func TestPassword(t *testing.T) {
	t.Parallel()

	assertStrings(t, validator.Password(validator.DefaultPasswordPolicy()), "validation.password",
		[]string{"Str0ngPass", "Another1Good"},
		[]string{"", "short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere", "Password1"},
	)

	t.Run("special characters can be required", func(t *testing.T) {
		policy := validator.DefaultPasswordPolicy()
		policy.RequireSpecial = true
		rule := validator.Password(policy)

		assert.False(t, rule.Apply(validator.Assigned("pw", "Str0ngPass")).IsValid())
		assert.True(t, rule.Apply(validator.Assigned("pw", "Str0ng!Pass")).IsValid())
	})

	t.Run("message names the length bounds", func(t *testing.T) {
		res := validator.Password(validator.DefaultPasswordPolicy()).Apply(validator.Assigned("pw", "x"))
		assert.Equal(t, "Must be 8-128 characters with required character types", res.Issues()[0].Message)
		assert.Equal(t, 8, res.Issues()[0].Params["min_length"])
	})
}
