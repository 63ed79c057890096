package cmd

import (
	"io"
	"log/slog"
)

// newLogger builds a slog.Logger writing to w at the given level, text or
// JSON handler depending on jsonFormat.
func newLogger(w io.Writer, jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
