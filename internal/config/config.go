package config

import (
	"fmt"
	"net"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/thobhanifreddy/puppeteer/internal/feed"
	"github.com/thobhanifreddy/puppeteer/internal/snapshot"
)

// Default configuration values.
// Network defaults live next to the clients that use them (the snapshot and
// feed packages); this package aggregates them so the CLI has a single place
// to read defaults from.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "chromecheck"

	// DefaultProbeTimeout is zero, meaning probe requests have no client-side
	// timeout. The snapshot host answers HEAD probes in well under a second
	// when it is reachable at all, and an enforced timeout on slow links
	// would turn live archives into false "unavailable" cells. Users on
	// unreliable networks can set a limit via the --timeout flag.
	DefaultProbeTimeout time.Duration = 0

	// DefaultFormat is the report format used when none is configured.
	DefaultFormat = FormatTable
)

// Report output formats accepted by the --format flag and the config file.
const (
	// FormatTable renders an aligned, color-coded terminal table.
	FormatTable = "table"

	// FormatJSON renders a single indented JSON document.
	FormatJSON = "json"

	// FormatMarkdown renders a GitHub Flavored Markdown table.
	FormatMarkdown = "markdown"
)

// Config holds all configuration options for chromecheck.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ProbeConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// StorageHost is the base URL of the Chromium snapshot storage.
	// Defaults to Google's public bucket; point it at a mirror when the
	// public host is unreachable.
	StorageHost string

	// FeedURL is the release feed endpoint queried in feed mode.
	FeedURL string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When empty, requests go out directly.
	ProxyAddress string

	// ProbeTimeout is the per-request timeout for availability probes.
	// Zero means no timeout.
	ProbeTimeout time.Duration

	// UserAgent is the User-Agent header sent with HTTP requests.
	// A descriptive User-Agent helps storage operators identify probe
	// traffic in their logs.
	UserAgent string

	// Format selects the report output format: FormatTable, FormatJSON,
	// or FormatMarkdown.
	Format string

	// OutputPath is the report destination file. When empty, the report
	// is written to stdout. Directories are created automatically if they
	// don't exist.
	OutputPath string

	// NoColor disables ANSI color codes in table output. Color is also
	// disabled automatically when the output is not a terminal.
	NoColor bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .chromecheck.yaml in the current
	// directory, the XDG config directory, and the user's home directory.
	ConfigFilePath string

	// Revisions holds the raw range endpoints from the command line,
	// exactly two in range mode and none in feed mode. The command guards
	// the argument count before populating this field.
	Revisions []string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (host, feed URL,
// user agent, format). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		StorageHost:  snapshot.DefaultHost,
		FeedURL:      feed.DefaultURL,
		ProbeTimeout: DefaultProbeTimeout,
		UserAgent:    snapshot.DefaultUserAgent,
		Format:       DefaultFormat,
	}
}

// XDGConfigDir returns the XDG config directory for chromecheck.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/chromecheck
// On macOS: ~/Library/Application Support/chromecheck
// On Windows: %APPDATA%\chromecheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ValidFormat reports whether format names a supported report format.
func ValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any network activity.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Range mode needs both endpoints; feed mode needs none
	if len(c.Revisions) != 0 && len(c.Revisions) != 2 {
		return ErrInvalidRevisionCount
	}

	// Zero disables the timeout, so only negative values are invalid
	if c.ProbeTimeout < 0 {
		return ErrInvalidTimeout
	}

	if !ValidFormat(c.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	if c.StorageHost == "" {
		return ErrEmptyStorageHost
	}

	if c.FeedURL == "" {
		return ErrEmptyFeedURL
	}

	// The proxy address must split cleanly so the SOCKS5 dialer can use it
	if c.ProxyAddress != "" {
		if _, _, err := net.SplitHostPort(c.ProxyAddress); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidProxyAddress, c.ProxyAddress)
		}
	}

	return nil
}
