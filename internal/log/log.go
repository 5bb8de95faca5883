package log

import (
	"io"
	"log/slog"
)

// New creates a new slog.Logger that writes human-readable text to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
//
// Design decision: The default level is Warn rather than Info because the
// availability table is the program's real output; progress chatter on a
// normal run would only get in the way of piping the report somewhere.
// Probe and feed details surface at Debug when verbose is enabled.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
