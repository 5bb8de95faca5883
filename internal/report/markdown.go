package report

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// MarkdownWriter outputs the availability matrix in Markdown format.
// This format is designed for pasting into issues and documentation.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
//  1. Type-safe markdown generation
//  2. Table support with proper cell escaping
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter

	rows [][]string
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteRow buffers one availability row. The document is emitted by Flush.
func (w *MarkdownWriter) WriteRow(row *model.AvailabilityRow) error {
	cells := make([]string, 0, len(row.Availability)+1)

	// The label and revision share the first column, as in the terminal
	// table. TrimSpace drops the separator when the label is empty.
	cells = append(cells, strings.TrimSpace(row.Label+" "+row.Revision.String()))
	for _, available := range row.Availability {
		if available {
			cells = append(cells, "+")
		} else {
			cells = append(cells, "-")
		}
	}

	w.rows = append(w.rows, cells)
	return nil
}

// Flush builds the markdown document and writes it to the output.
func (w *MarkdownWriter) Flush() error {
	header := make([]string, 0, len(w.platforms)+1)
	header = append(header, "revision")
	for _, platform := range w.platforms {
		header = append(header, platform.String())
	}

	md := markdown.NewMarkdown(w.output)
	md.H1("Chromium snapshot availability")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: header,
		Rows:   w.rows,
	})

	return md.Build()
}
