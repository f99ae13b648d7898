package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger. Output goes to stderr so match results
// and DOT on stdout stay machine readable.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
