package runid

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
)

const maxIDLength = 128

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// New returns a fresh UUIDv4 run id.
func New() string {
	return uuid.New().String()
}

// Resolve returns candidate when it is a usable id, otherwise a fresh one.
// Usable ids are 1-128 characters of letters, digits, "_" or "-".
func Resolve(candidate string) string {
	if isValid(candidate) {
		return candidate
	}
	return New()
}

func isValid(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}

type contextKey struct{}

func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds the "run_id" attribute when ctx carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return slog.String("run_id", id), true
		}
		return slog.Attr{}, false
	}
}
