package config

import (
	"fmt"
	"time"
)

// File represents the structure of the .chromecheck.yaml configuration file.
// Every field is optional; absent fields leave the corresponding Config
// value untouched so defaults and flags still apply.
type File struct {
	// StorageHost overrides the snapshot storage base URL.
	StorageHost string `yaml:"storageHost,omitempty"`

	// FeedURL overrides the release feed endpoint.
	FeedURL string `yaml:"feedURL,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// ProbeTimeout is a Go duration string such as "30s" or "2m".
	// An empty string keeps the default (no timeout).
	ProbeTimeout string `yaml:"probeTimeout,omitempty"`

	// Format selects the report output format.
	Format string `yaml:"format,omitempty"`

	// NoColor disables ANSI color codes in table output.
	// A pointer distinguishes "not set" from an explicit false.
	NoColor *bool `yaml:"noColor,omitempty"`
}

// Apply overlays the file's values onto cfg. Only fields present in the
// file are copied, so the precedence defaults < file < flags holds when
// the caller applies flag values afterwards.
func (f *File) Apply(cfg *Config) error {
	if f.StorageHost != "" {
		cfg.StorageHost = f.StorageHost
	}
	if f.FeedURL != "" {
		cfg.FeedURL = f.FeedURL
	}
	if f.Proxy != "" {
		cfg.ProxyAddress = f.Proxy
	}
	if f.ProbeTimeout != "" {
		d, err := time.ParseDuration(f.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("invalid probeTimeout in config file: %w", err)
		}
		cfg.ProbeTimeout = d
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
	if f.NoColor != nil {
		cfg.NoColor = *f.NoColor
	}
	return nil
}
