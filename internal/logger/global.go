package logger

import (
	"log/slog"
	"time"
)

// LogQuery logs a database statement.
func LogQuery(operation, query string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Query failed", append(attrs,
			slog.String("query", query),
			slog.Any("error", err),
		)...)
		return
	}
	slog.Debug("Query executed", append(attrs, slog.String("query", query))...)
}

// LogRequest logs a finished HTTP request.
func LogRequest(method, path string, status int, duration time.Duration, attrs ...any) {
	base := []any{
		slog.String("type", "http"),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Duration("took", duration),
	}
	msg := "Request handled"
	switch {
	case status >= 500:
		slog.Error(msg, append(base, attrs...)...)
	case status >= 400:
		slog.Warn(msg, append(base, attrs...)...)
	default:
		slog.Info(msg, append(base, attrs...)...)
	}
}

// LogSystem logs system events
func LogSystem(msg string, attrs ...any) {
	baseAttrs := []any{slog.String("type", "sys")}
	slog.Info(msg, append(baseAttrs, attrs...)...)
}

// LogError logs error events
func LogError(msg string, err error, attrs ...any) {
	baseAttrs := []any{
		slog.String("type", "error"),
		slog.Any("error", err),
	}
	slog.Error(msg, append(baseAttrs, attrs...)...)
}

// LogSlowQuery logs a statement that took longer than expected.
func LogSlowQuery(operation, query string, duration time.Duration) {
	slog.Warn("Slow query",
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("query", query),
		slog.Duration("took", duration))
}
