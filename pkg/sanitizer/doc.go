// Package sanitizer transforms text values.
//
// ToUpperCase performs full Unicode upper-casing via golang.org/x/text/cases,
// leaving digits and punctuation untouched. Trim strips surrounding
// whitespace. Neither returns an error.
//
// Apply and Compose chain transforms into pipelines:
//
//	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpperCase)
//	normalize("  hello ") // "HELLO"
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
