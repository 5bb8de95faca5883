// Package log provides logger construction for chromecheck, built on top
// of the standard slog package.
//
// The package exists so every component logs through the same handler:
// human-readable text on stderr, quiet by default, chatty at Debug when
// the user asks for --verbose. Keeping log output on stderr leaves stdout
// to the availability table, so reports stay pipeable.
//
// # Usage
//
//	logger := log.New(os.Stderr, true) // verbose=true
//	logger.Debug("probing revision", "revision", 991337)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
