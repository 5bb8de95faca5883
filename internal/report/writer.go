package report

import (
	"io"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// RowWriter defines the interface for report output.
// Implementations receive the platform header once, then every scanned
// row in scan order, and finally a Flush call.
//
// Design decision: We use a row-at-a-time interface rather than handing
// writers a finished result set because the terminal table must stream:
// each revision's line appears while later revisions are still being
// probed. Formats that cannot stream (markdown, JSON) buffer rows
// internally and emit the whole document on Flush.
type RowWriter interface {
	// WriteHeader announces the platform column order. It is called
	// exactly once, before any row.
	WriteHeader(platforms []model.Platform) error

	// WriteRow renders one availability row. Rows arrive in scan order.
	WriteRow(row *model.AvailabilityRow) error

	// Flush completes the report. Streaming writers treat this as a
	// no-op; buffering writers emit their document here.
	Flush() error
}

// baseWriter provides common functionality for buffering report writers.
type baseWriter struct {
	output    io.Writer
	platforms []model.Platform
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// WriteHeader records the platform column order for use at Flush time.
func (w *baseWriter) WriteHeader(platforms []model.Platform) error {
	w.platforms = platforms
	return nil
}
