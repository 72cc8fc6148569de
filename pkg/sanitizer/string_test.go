package sanitizer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/calckit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes leading and trailing spaces",
			input:    "  hello world  ",
			expected: "hello world",
		},
		{
			name:     "removes tabs and newlines",
			input:    "\t\nhello\n\t",
			expected: "hello",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "preserves internal whitespace",
			input:    "  hello  world  ",
			expected: "hello  world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestToUpperCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "hello", expected: "HELLO"},
		{name: "already uppercase", input: "HELLO", expected: "HELLO"},
		{name: "mixed case", input: "HeLLo WoRLd", expected: "HELLO WORLD"},
		{name: "empty string", input: "", expected: ""},
		{name: "digits and punctuation", input: "test123!@#", expected: "TEST123!@#"},
		{name: "accented letters", input: "éàü", expected: "ÉÀÜ"},
		{name: "sharp s expands", input: "straße", expected: "STRASSE"},
		{name: "cyrillic", input: "привет", expected: "ПРИВЕТ"},
		{name: "dotted i stays latin", input: "istanbul", expected: "ISTANBUL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.ToUpperCase(tt.input))
		})
	}
}

func TestToUpperCase_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "HELLO WORLD", sanitizer.ToUpperCase("hello world"))
		}()
	}
	wg.Wait()
}
