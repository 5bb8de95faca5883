// Package main provides the entry point for the chromecheck CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thobhanifreddy/puppeteer/internal/config"
)

// NewRootCmd creates the root command for chromecheck.
//
// The root command is the checker itself rather than a dispatcher: running
// with no arguments scans the release feed positions, running with two
// revision arguments scans that range.
func NewRootCmd() *cobra.Command {
	defaults := config.NewConfig()

	cmd := &cobra.Command{
		Use:   "chromecheck [fromRevision toRevision]",
		Short: "Check Chromium snapshot availability across platforms",
		Long: `chromecheck reports whether prebuilt Chromium snapshot archives exist for
the linux, mac, win32, and win64 platforms.

With no arguments it queries the release feed and checks the branch base
positions of the dev, beta, canary, and stable channels. With two revision
arguments it checks every revision from the first up to, but not including,
the second, stepping downward when the first is larger.

Examples:
  # Check the current channel positions from the release feed
  chromecheck

  # Check revisions 991000 through 991039
  chromecheck 991000 991040

  # Walk downward from 991040 and write a Markdown report
  chromecheck --format markdown --output report.md 991040 991000

  # Probe a mirror through a SOCKS5 proxy
  chromecheck --host https://mirror.example.com --proxy 127.0.0.1:1080 991000 991040`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runCheck,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// Probe flags
	cmd.Flags().DurationP("timeout", "t", defaults.ProbeTimeout,
		"Per-probe timeout (0 disables the timeout)")
	cmd.Flags().String("host", defaults.StorageHost,
		"Snapshot storage base URL")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050)")

	// Feed flags
	cmd.Flags().String("feed-url", defaults.FeedURL,
		"Release feed endpoint")

	// Report flags
	cmd.Flags().StringP("format", "f", defaults.Format,
		`Report format: "table", "json", or "markdown"`)
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .chromecheck.yaml in current, XDG config, or home directory)")

	// Add subcommands
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
