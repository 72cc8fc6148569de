package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/calckit/pkg/sanitizer"
)

var benchStrings = []string{
	"hello",
	"HeLLo WoRLd",
	"test123!@#",
	"straße café",
	strings.Repeat("a", 1000),
}

func BenchmarkToUpperCase(b *testing.B) {
	for _, s := range benchStrings {
		b.Run(s[:min(12, len(s))], func(b *testing.B) {
			for b.Loop() {
				_ = sanitizer.ToUpperCase(s)
			}
		})
	}
}

func BenchmarkCompose(b *testing.B) {
	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpperCase)
	for b.Loop() {
		_ = normalize("  user@example.com  ")
	}
}
