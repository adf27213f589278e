package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls logger behavior.
type Config struct {
	Level     slog.Level
	Format    string // "text" or "json"
	DevMode   bool
	AddSource bool
	// Output defaults to stderr; stdout is reserved for command output.
	Output io.Writer
}

// New creates a configured slog.Logger.
// DevMode always produces human-readable text; otherwise Format decides.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource || cfg.DevMode,
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.DevMode || !strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
