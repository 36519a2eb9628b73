package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a logger writing to stdout.
// level may be "debug", "info", "warn", or "error" (default "info").
// format may be "json" or "text" (default "text").
func New(level, format string) Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level, format string) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &slogLogger{logger: slog.New(handler)}
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() Logger {
	return NewWithWriter(io.Discard, "error", "text")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Error logs an error message with the 🔴 emoji.
func (l *slogLogger) Error(msg string, err error) {
	l.logger.Error(fmt.Sprintf("🔴 %s", msg), "error", err)
}

// Warn logs a warning message with the ⚠️ emoji.
func (l *slogLogger) Warn(msg string) {
	l.logger.Warn(fmt.Sprintf("⚠️ %s", msg))
}

// Info logs an informational message.
func (l *slogLogger) Info(msg string) {
	l.logger.Info(msg)
}

// Debug logs a debug message.
func (l *slogLogger) Debug(msg string) {
	l.logger.Debug(msg)
}
