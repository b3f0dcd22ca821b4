// Package logging provides structured logging setup for the artLibro CLI.
package logging

import (
	"log/slog"
	"os"
)

// Setup initializes the default slog logger. Verbose mode lowers the
// level to debug; diagnostics always go to stderr so they never mix
// with command output.
func Setup(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
