package logging

import (
	"io"
	"log/slog"
)

func ParseLevel(s string) slog.Level {
	switch s {
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

// Setup installs a JSON logger on w as the slog default and returns it.
func Setup(w io.Writer, level string, attrs ...any) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})).With(attrs...)
	slog.SetDefault(logger)
	return logger
}
