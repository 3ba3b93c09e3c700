package logging

import (
	"context"
	"log/slog"
)

// Logger is the part of slog the boundary calls. Failures are logged at
// debug, contract violations by the C caller at warn and recovered panics at
// error, so no other levels are exposed.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps logger. Passing nil binds to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogLogger{l: logger}
}

// Discard returns a Logger that drops every record.
func Discard() Logger {
	return slogLogger{l: slog.New(slog.DiscardHandler)}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{l: s.l.With(args...)}
}

// Redacted returns an attribute for caller text that was left out of the
// record on purpose.
func Redacted(key string) slog.Attr {
	return slog.String(key, "[redacted]")
}
