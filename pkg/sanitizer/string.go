package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpperCase converts every letter to its uppercase form using full Unicode
// case mapping, so a single rune may expand ("ß" becomes "SS").
// Non-letters are returned unchanged.
func ToUpperCase(s string) string {
	if s == "" {
		return s
	}
	// A Caser keeps state between calls and must not be shared across goroutines.
	return cases.Upper(language.Und).String(s)
}
