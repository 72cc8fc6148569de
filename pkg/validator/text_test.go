package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/calckit/pkg/validator"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain address", input: "test@example.com", expected: true},
		{name: "subdomain", input: "user@mail.co.uk", expected: true},
		{name: "plus tag", input: "user+tag@example.org", expected: true},
		{name: "missing at", input: "testexample.com", expected: false},
		{name: "missing domain", input: "test@", expected: false},
		{name: "missing dot in domain", input: "test@localhost", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "space in local part", input: "test @example.com", expected: false},
		{name: "trailing space", input: "test@example.com ", expected: false},
		{name: "tab", input: "test@exa\tmple.com", expected: false},
		{name: "vertical tab", input: "test@exa\vmple.com", expected: false},
		{name: "no-break space", input: "test@exa\u00a0mple.com", expected: false},
		{name: "ideographic space", input: "test\u3000@example.com", expected: false},
		{name: "double at", input: "a@b@c.com", expected: false},
		{name: "empty local part", input: "@example.com", expected: false},
		{name: "empty tld", input: "test@example.", expected: false},
		{name: "dot right after at", input: "test@.com", expected: false},
		{name: "multiline", input: "test@example.com\nx", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.IsValidEmail(tt.input))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "digits only", input: "12345", expected: true},
		{name: "single zero", input: "0", expected: true},
		{name: "leading zeros", input: "007", expected: true},
		{name: "letters", input: "123abc", expected: false},
		{name: "empty", input: "", expected: false},
		{name: "space", input: "123 456", expected: false},
		{name: "decimal point", input: "123.456", expected: false},
		{name: "sign", input: "-1", expected: false},
		{name: "arabic-indic digits", input: "\u0661\u0662\u0663", expected: false},
		{name: "trailing newline", input: "123\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, validator.IsNumeric(tt.input))
		})
	}
}

func TestRules(t *testing.T) {
	t.Run("valid email rule", func(t *testing.T) {
		rule := validator.ValidEmail("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "must be a valid email address", rule.Error.Message)

		assert.False(t, validator.ValidEmail("email", "invalid").Check())
	})

	t.Run("numeric string rule", func(t *testing.T) {
		rule := validator.NumericString("zip", "12345")
		assert.True(t, rule.Check())
		assert.Equal(t, "must contain only digits", rule.Error.Message)

		assert.False(t, validator.NumericString("zip", "abc").Check())
	})

	t.Run("required rule", func(t *testing.T) {
		assert.True(t, validator.Required("name", "x").Check())
		assert.False(t, validator.Required("name", "").Check())
	})
}
