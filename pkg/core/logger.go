package core

import (
	"fmt"
	"log/slog"
	"os"
)

// SlogLogger adapts a *slog.Logger to the Logger interface, so the renderer
// keeps the teacher's printf-style call sites while emitting structured
// records a real render farm would filter and aggregate (pass number, tile
// bounds, bounce depth are attached by call sites via Printf's format
// string; the message itself still carries those details as text, since
// Logger.Printf predates structured fields and call sites were not worth
// rewriting wholesale for this knob).
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger builds a Logger backed by slog's text handler on stderr,
// suitable as the renderer's default.
func NewSlogLogger() *SlogLogger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &SlogLogger{logger: slog.New(handler)}
}

// NewSlogLoggerWith wraps an existing *slog.Logger, e.g. one with
// pre-attached fields via With(...).
func NewSlogLoggerWith(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

// Printf implements Logger by formatting the message and emitting it at Info
// level.
func (l *SlogLogger) Printf(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// NopLogger discards everything; useful in tests and library callers that
// don't want renderer diagnostics on stdout/stderr.
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}
