// Package logging constructs the logger passed through the pipeline.
//
// podsite uses log/slog with a text handler on stderr. There is no
// package-level logger: the CLI builds one and every stage receives it
// explicitly.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing text to stderr.
//
// At the default level only run summaries (info and up) are shown;
// verbose enables the per-stage debug chatter.
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter is New with an explicit destination, for tests.
func NewWithWriter(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
