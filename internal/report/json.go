package report

import (
	"encoding/json"
	"io"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// JSONWriter outputs the availability matrix in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
//  1. It's part of the standard library (no extra dependencies)
//  2. It's sufficient for our needs
//  3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	rows []JSONRow
}

// JSONCell is one platform's availability within a JSONRow. Cells keep
// the platform column order instead of relying on map key sorting.
type JSONCell struct {
	// Platform is the snapshot target platform.
	Platform model.Platform `json:"platform"`

	// Available indicates whether the snapshot archive exists.
	Available bool `json:"available"`
}

// JSONRow is one scanned revision in the JSON document.
type JSONRow struct {
	// Label is the feed label ("[os channel]"), omitted in range mode.
	Label string `json:"label,omitempty"`

	// Revision is the scanned build position.
	Revision model.Revision `json:"revision"`

	// Platforms holds per-platform availability in column order.
	Platforms []JSONCell `json:"platforms"`

	// AllAvailable indicates whether every platform has an archive.
	AllAvailable bool `json:"allAvailable"`
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	// Platforms is the column order shared by every row.
	Platforms []model.Platform `json:"platforms"`

	// Rows holds the scanned revisions in scan order.
	Rows []JSONRow `json:"rows"`
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteRow buffers one availability row. The document is emitted by Flush.
func (w *JSONWriter) WriteRow(row *model.AvailabilityRow) error {
	cells := make([]JSONCell, 0, len(row.Availability))
	for i, available := range row.Availability {
		cells = append(cells, JSONCell{
			Platform:  w.platforms[i],
			Available: available,
		})
	}

	w.rows = append(w.rows, JSONRow{
		Label:        row.Label,
		Revision:     row.Revision,
		Platforms:    cells,
		AllAvailable: row.AllAvailable(),
	})
	return nil
}

// Flush marshals the buffered document and writes it to the output.
func (w *JSONWriter) Flush() error {
	doc := JSONReport{
		Platforms: w.platforms,
		Rows:      w.rows,
	}
	if doc.Rows == nil {
		doc.Rows = []JSONRow{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// Trailing newline for better terminal output.
	data = append(data, '\n')

	_, err = w.output.Write(data)
	return err
}
