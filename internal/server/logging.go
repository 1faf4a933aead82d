package server

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLogLevel maps a config log level to a slog level. Unknown values
// are treated as info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// LogOutput returns w, or a rotating file writer when path is set. The
// returned closer must be called on exit.
func LogOutput(w io.Writer, path string) (io.Writer, io.Closer) {
	if path == "" {
		return w, nopCloser{}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return lj, lj
}

// NewLogger builds a text logger at level writing to w.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
