package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thobhanifreddy/puppeteer/internal/config"
	"github.com/thobhanifreddy/puppeteer/internal/feed"
	"github.com/thobhanifreddy/puppeteer/internal/log"
	"github.com/thobhanifreddy/puppeteer/internal/model"
	"github.com/thobhanifreddy/puppeteer/internal/report"
	"github.com/thobhanifreddy/puppeteer/internal/scan"
	"github.com/thobhanifreddy/puppeteer/internal/snapshot"
)

// runCheck executes the root command.
func runCheck(cmd *cobra.Command, args []string) error {
	// Anything other than zero or two revision arguments is a usage
	// mistake, answered with the usage text and a clean exit rather than
	// an error.
	if len(args) != 0 && len(args) != 2 {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		return nil
	}

	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReport(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags, applying the
// optional config file between the defaults and the flags so that
// explicitly set flags always win.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip the overlay when nothing is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Only flags the user actually set override file values
	if cmd.Flags().Changed("timeout") {
		cfg.ProbeTimeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("host") {
		cfg.StorageHost, err = cmd.Flags().GetString("host")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("proxy") {
		cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("feed-url") {
		cfg.FeedURL, err = cmd.Flags().GetString("feed-url")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("format") {
		cfg.Format, err = cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("no-color") {
		cfg.NoColor, err = cmd.Flags().GetBool("no-color")
		if err != nil {
			return nil, err
		}
	}

	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the range endpoints
	cfg.Revisions = args

	return cfg, nil
}

// runReport builds the probe stack and executes the requested scan.
func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	// Parse range endpoints before any network activity so typos fail fast.
	rangeMode := len(cfg.Revisions) == 2
	var from, to model.Revision
	if rangeMode {
		var err error
		if from, err = model.ParseRevision(cfg.Revisions[0]); err != nil {
			return err
		}
		if to, err = model.ParseRevision(cfg.Revisions[1]); err != nil {
			return err
		}
	}

	// Both the prober and the feed client share one HTTP client so the
	// proxy and timeout settings apply to every request.
	httpClient, err := snapshot.NewHTTPClient(cfg.ProxyAddress, cfg.ProbeTimeout)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	prober := snapshot.NewClient(
		snapshot.WithHost(cfg.StorageHost),
		snapshot.WithHTTPClient(httpClient),
		snapshot.WithUserAgent(cfg.UserAgent),
		snapshot.WithLogger(logger),
	)

	output, closeOutput, err := openOutput(cmd, cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newRowWriter(cfg, output, rangeMode)
	scanner := scan.New(prober, writer, scan.WithLogger(logger))

	if rangeMode {
		if err := writer.WriteHeader(scanner.Platforms()); err != nil {
			return err
		}
		if err := scanner.ScanRange(ctx, from, to); err != nil {
			return err
		}
		return writer.Flush()
	}

	feedClient := feed.New(
		feed.WithURL(cfg.FeedURL),
		feed.WithHTTPClient(httpClient),
		feed.WithLogger(logger),
	)

	// Progress goes to stderr so stdout stays a clean report
	fmt.Fprintf(cmd.ErrOrStderr(), "Fetching revisions from %s...\n", cfg.FeedURL)

	entries, err := feedClient.FetchAll(ctx)
	if err != nil {
		return err
	}

	if err := writer.WriteHeader(scanner.Platforms()); err != nil {
		return err
	}
	if err := scanner.ScanFeed(ctx, entries); err != nil {
		return err
	}
	return writer.Flush()
}

// openOutput returns the report destination and a close function.
// An empty path means the command's stdout, which must not be closed.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newRowWriter selects the report writer for the configured format.
func newRowWriter(cfg *config.Config, output io.Writer, rangeMode bool) report.RowWriter {
	switch cfg.Format {
	case config.FormatJSON:
		return report.NewJSONWriter(output)
	case config.FormatMarkdown:
		return report.NewMarkdownWriter(output)
	default:
		scheme := report.NewScheme(colorEnabled(cfg, output))
		if rangeMode {
			return report.NewRangeTableWriter(output, scheme)
		}
		return report.NewFeedTableWriter(output, scheme)
	}
}

// colorEnabled reports whether table output should carry ANSI color codes.
// Color is off when --no-color is set or when the destination is not a
// terminal, so files and pipes stay free of escape codes.
func colorEnabled(cfg *config.Config, output io.Writer) bool {
	if cfg.NoColor {
		return false
	}

	f, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
