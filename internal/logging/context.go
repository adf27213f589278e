package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

type contextKey string

const taskIDKey contextKey = "task_id"

// WithTaskID stores a task ID in the context.
func WithTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, taskIDKey, id)
}

// TaskID extracts the task ID from the context.
// Returns empty string if not set.
func TaskID(ctx context.Context) string {
	id, _ := ctx.Value(taskIDKey).(string)
	return id
}

// GenerateTaskID creates a task ID in the format "task_<name>_<6 hex chars>".
func GenerateTaskID(name string) string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("task_%s_%d", name, time.Now().Unix())
	}
	return fmt.Sprintf("task_%s_%s", name, hex.EncodeToString(b))
}

// LogAttrsFromContext returns the context's task_id as slog attributes.
// Only non-empty values are included.
func LogAttrsFromContext(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if id := TaskID(ctx); id != "" {
		attrs = append(attrs, slog.String("task_id", id))
	}
	return attrs
}

// FromContext returns logger with the context's attributes attached.
func FromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	attrs := LogAttrsFromContext(ctx)
	if len(attrs) == 0 {
		return logger
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return logger.With(args...)
}
