// Package config provides configuration structures and utilities for
// chromecheck. It defines the options for snapshot probing, the release
// feed, and report rendering, plus the optional .chromecheck.yaml file
// that overrides the built-in defaults.
package config
