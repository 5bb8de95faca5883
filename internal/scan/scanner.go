package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thobhanifreddy/puppeteer/internal/model"
	"github.com/thobhanifreddy/puppeteer/internal/report"
	"github.com/thobhanifreddy/puppeteer/internal/snapshot"
	"golang.org/x/sync/errgroup"
)

// Scanner probes snapshot availability for sequences of revisions and
// streams the resulting rows to a report writer.
//
// The platform set is taken from the prober at construction time and stays
// fixed for the Scanner's lifetime, so every row has the same column layout.
type Scanner struct {
	// prober answers whether a snapshot archive exists for a
	// platform/revision pair.
	prober snapshot.Prober

	// writer receives one row per scanned revision, in scan order.
	writer report.RowWriter

	// platforms is the column order shared by every row.
	platforms []model.Platform

	// logger is used for progress logging.
	logger *slog.Logger
}

// Option is a function that configures a Scanner.
type Option func(*Scanner)

// WithLogger sets a custom logger for the scanner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a new Scanner that probes with prober and writes rows to writer.
func New(prober snapshot.Prober, writer report.RowWriter, opts ...Option) *Scanner {
	s := &Scanner{
		prober:    prober,
		writer:    writer,
		platforms: prober.Platforms(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Platforms returns the platform column order used for every row.
func (s *Scanner) Platforms() []model.Platform {
	return s.platforms
}

// ScanRange probes every revision in the half-open interval [from, to),
// stepping toward to. When from is greater than to the scan runs in
// descending order, so callers can watch recent revisions first. When from
// equals to, no rows are written.
//
// Design decision: The upper bound is exclusive rather than inclusive
// because ranges compose without overlap: scanning [100, 200) and then
// [200, 300) touches each revision exactly once.
//
// Returns the context error if the scan is cancelled between rows, or the
// first writer error encountered.
func (s *Scanner) ScanRange(ctx context.Context, from, to model.Revision) error {
	total := int(to - from)
	step := model.Revision(1)
	if from > to {
		total = -total
		step = -1
	}

	s.logger.Info("starting range scan",
		"from", from,
		"to", to,
		"total_revisions", total,
	)

	startTime := time.Now()

	for revision := from; revision != to; revision += step {
		// Check for cancellation before starting each row
		select {
		case <-ctx.Done():
			s.logger.Warn("range scan cancelled",
				"revision", revision,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		if err := s.scanRevision(ctx, "", revision); err != nil {
			return err
		}
	}

	s.logger.Info("range scan complete",
		"total_revisions", total,
		"elapsed", time.Since(startTime),
	)

	return nil
}

// ScanFeed probes the revisions named by the given feed entries, in the
// order the feed reported them. Each row is labeled with the entry's
// display OS and channel, e.g. "[win32 dev]".
func (s *Scanner) ScanFeed(ctx context.Context, entries []model.FeedEntry) error {
	s.logger.Info("starting feed scan",
		"total_entries", len(entries),
	)

	startTime := time.Now()

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			s.logger.Warn("feed scan cancelled",
				"os", entry.OS,
				"channel", entry.Channel,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		label := fmt.Sprintf("[%s %s]", entry.DisplayOS(), entry.Channel)
		if err := s.scanRevision(ctx, label, entry.Revision); err != nil {
			return err
		}
	}

	s.logger.Info("feed scan complete",
		"total_entries", len(entries),
		"elapsed", time.Since(startTime),
	)

	return nil
}

// scanRevision probes all platforms for a single revision concurrently and
// writes the finished row.
//
// Each goroutine writes a distinct index of the availability slice, so no
// mutex is needed; g.Wait establishes the happens-before edge for the
// subsequent read. The fan-out is bounded by the platform count, so no
// concurrency limit is set.
func (s *Scanner) scanRevision(ctx context.Context, label string, revision model.Revision) error {
	s.logger.Debug("probing revision",
		"label", label,
		"revision", revision,
	)

	availability := make([]bool, len(s.platforms))

	g, ctx := errgroup.WithContext(ctx)
	for i, platform := range s.platforms {
		i, platform := i, platform
		g.Go(func() error {
			// Check for cancellation before issuing the probe
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			availability[i] = s.prober.CanDownload(ctx, platform, revision)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return s.writer.WriteRow(&model.AvailabilityRow{
		Label:        label,
		Revision:     revision,
		Availability: availability,
	})
}
