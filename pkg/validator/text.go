package validator

import "regexp"

// emailPart excludes "@" and whitespace, including \v and the Unicode
// space separators that RE2's \s does not cover.
const emailPart = `[^@\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`

var (
	emailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// IsValidEmail reports whether s has the shape local@domain.tld.
// It is a syntactic check only; the domain is not resolved.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsNumeric reports whether s is one or more ASCII decimal digits.
func IsNumeric(s string) bool {
	return numericStringRegex.MatchString(s)
}

// ValidEmail validates that value passes IsValidEmail.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidEmail(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// NumericString validates that value passes IsNumeric.
func NumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNumeric(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only digits",
		},
	}
}

// Required validates that value is not empty.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}
