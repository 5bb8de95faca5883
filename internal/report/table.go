package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// Column widths for the terminal table, in visible columns.
//
// The first column holds the revision (prefixed by the feed label in
// feed mode); the remaining columns hold one availability mark per
// platform. Feed mode widens the first column to make room for the
// "[os channel]" prefix.
const (
	rangeRevisionWidth = 10
	feedRevisionWidth  = 27
	platformColWidth   = 7

	// feedLabelWidth is the visible width the "[os channel]" prefix is
	// right-aligned to, so the revision column lines up across rows.
	feedLabelWidth = 15
)

// Table renders rows of fixed-width, center-padded columns.
//
// Column widths are set at construction and never change. There are no
// column separators beyond the padding whitespace, and no row buffering:
// each DrawRow call emits one complete line.
type Table struct {
	widths []int
	output io.Writer
}

// NewTable creates a Table with the given column widths writing to output.
func NewTable(output io.Writer, widths ...int) *Table {
	return &Table{
		widths: widths,
		output: output,
	}
}

// Columns returns the number of columns in the table.
func (t *Table) Columns() int {
	return len(t.widths)
}

// DrawRow writes one line with each value center-padded to its column
// width. Values wider than their column are kept whole, breaking
// alignment for that row rather than truncating data.
//
// The number of values must equal the number of columns. A mismatch is
// a bug in the caller, not a runtime condition, so DrawRow panics
// instead of rendering a silently misaligned table.
func (t *Table) DrawRow(values ...string) error {
	if len(values) != len(t.widths) {
		panic(fmt.Sprintf("report: row has %d values for a %d-column table", len(values), len(t.widths)))
	}

	var row strings.Builder
	for i, value := range values {
		row.WriteString(PadCenter(value, t.widths[i]))
	}
	row.WriteByte('\n')

	_, err := io.WriteString(t.output, row.String())
	return err
}

// TableWriter renders availability rows as an aligned, color-coded
// terminal table. Every row is written as soon as it arrives, so
// results appear while the scan is still running.
type TableWriter struct {
	table  *Table
	scheme *Scheme

	// labelWidth is the visible width row labels are right-aligned to
	// before the revision is appended. Zero in range mode.
	labelWidth int
}

// tableWidths builds the column width list: the revision column
// followed by one fixed-width column per supported platform.
func tableWidths(revisionWidth int) []int {
	widths := []int{revisionWidth}
	for range model.SupportedPlatforms() {
		widths = append(widths, platformColWidth)
	}
	return widths
}

// NewRangeTableWriter returns the table writer used for explicit
// revision ranges: a narrow first column with no label prefix.
func NewRangeTableWriter(output io.Writer, scheme *Scheme) *TableWriter {
	return &TableWriter{
		table:  NewTable(output, tableWidths(rangeRevisionWidth)...),
		scheme: scheme,
	}
}

// NewFeedTableWriter returns the table writer used for feed-derived
// rows: a wide first column holding the "[os channel]" label followed
// by the revision.
func NewFeedTableWriter(output io.Writer, scheme *Scheme) *TableWriter {
	return &TableWriter{
		table:      NewTable(output, tableWidths(feedRevisionWidth)...),
		scheme:     scheme,
		labelWidth: feedLabelWidth,
	}
}

// WriteHeader draws the header row: an empty first column followed by
// the platform names in column order.
func (w *TableWriter) WriteHeader(platforms []model.Platform) error {
	values := make([]string, 0, len(platforms)+1)
	values = append(values, "")
	for _, platform := range platforms {
		values = append(values, platform.String())
	}
	return w.table.DrawRow(values...)
}

// WriteRow draws one availability row. The revision is rendered green
// when every platform has an archive; each platform cell shows a green
// "+" for available and a red "-" for missing.
func (w *TableWriter) WriteRow(row *model.AvailabilityRow) error {
	revision := row.Revision.String()
	if row.AllAvailable() {
		revision = w.scheme.Green(revision)
	}

	values := make([]string, 0, len(row.Availability)+1)
	values = append(values, PadLeft(row.Label, w.labelWidth)+" "+revision)
	for _, available := range row.Availability {
		if available {
			values = append(values, w.scheme.Green("+"))
		} else {
			values = append(values, w.scheme.Red("-"))
		}
	}
	return w.table.DrawRow(values...)
}

// Flush is a no-op: the table streams every row on arrival.
func (w *TableWriter) Flush() error {
	return nil
}
