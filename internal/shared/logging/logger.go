package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config mirrors the LOG_* environment settings: textual level, text or json
// encoding, and optional source attribution.
type Config struct {
	Level     string
	Format    string
	AddSource bool
}

// ParseLevel maps the configured level name onto slog, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the service logger for the given sink; main passes a MultiWriter
// over stdout and the dated log file.
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	default:
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
}
