package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Validate wraps a sentinel with fmt.Errorf when
// the offending value is worth echoing back to the user.
var (
	// ErrInvalidRevisionCount is returned when the revision endpoints are
	// neither absent (feed mode) nor exactly two (range mode).
	ErrInvalidRevisionCount = errors.New("invalid revisions: provide exactly two revision endpoints or none")

	// ErrInvalidTimeout is returned when the probe timeout is negative.
	// Zero is valid and disables the timeout entirely.
	ErrInvalidTimeout = errors.New("invalid probe timeout: must be non-negative")

	// ErrInvalidFormat is returned when the report format is not one of
	// the supported format names.
	ErrInvalidFormat = errors.New(`invalid format: must be "table", "json", or "markdown"`)

	// ErrEmptyStorageHost is returned when the snapshot storage host is empty.
	// Probes have nowhere to go without a host.
	ErrEmptyStorageHost = errors.New("invalid storage host: must not be empty")

	// ErrEmptyFeedURL is returned when the release feed URL is empty.
	ErrEmptyFeedURL = errors.New("invalid feed url: must not be empty")

	// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address does
	// not split into a host and a port.
	ErrInvalidProxyAddress = errors.New(`invalid proxy address: must be in "host:port" format`)
)
