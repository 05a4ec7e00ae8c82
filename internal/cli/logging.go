package cli

import (
	"io"
	"log/slog"
)

// setupLogging installs a text slog handler on w as the default logger.
// Only warnings and errors are shown unless verbose is set.
func setupLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
