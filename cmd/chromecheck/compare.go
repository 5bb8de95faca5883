package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thobhanifreddy/puppeteer/internal/model"
	"github.com/thobhanifreddy/puppeteer/internal/report"
)

// Constants for the availability trend between two reports.
const (
	trendImproved  = "improved"
	trendWorsened  = "worsened"
	trendUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command diffs two availability reports saved with --format json.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <previous.json> <current.json>",
		Short: "Compare two saved availability reports",
		Long: `Compare displays differences between two availability reports.

Snapshot archives appear after builders finish uploading and occasionally
disappear when the bucket is pruned, so re-running the same scan later can
give different results. Compare shows what changed between two runs:
- Archives that appeared since the previous report
- Archives that disappeared
- Revisions present in only one of the reports

Both inputs must be reports written with --format json.

Examples:
  # Save a baseline, then compare a later run against it
  chromecheck --format json --output monday.json 991000 991040
  chromecheck --format json --output friday.json 991000 991040
  chromecheck compare monday.json friday.json

  # Output the comparison in JSON format
  chromecheck compare --json monday.json friday.json

  # Output the comparison in Markdown format
  chromecheck compare --markdown monday.json friday.json`,
		Args: cobra.ExactArgs(2),
		RunE: runCompareCmd,
	}

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output comparison result in Markdown format")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	previous, err := loadReport(args[0])
	if err != nil {
		return err
	}
	current, err := loadReport(args[1])
	if err != nil {
		return err
	}

	result := compareReports(previous, current, args[0], args[1])

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputComparisonJSON(out, result)
	}
	if markdownOutput {
		return outputComparisonMarkdown(out, result)
	}
	return outputComparisonText(out, result)
}

// loadReport reads and parses a JSON availability report from disk.
func loadReport(path string) (*report.JSONReport, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var doc report.JSONReport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	if len(doc.Platforms) == 0 {
		return nil, fmt.Errorf("report %s has no platform columns (was it written with --format json?)", path)
	}
	return &doc, nil
}

// ComparisonResult holds the result of comparing two availability reports.
type ComparisonResult struct {
	// Previous summarizes the older report.
	Previous ReportSummary `json:"previous_report"`

	// Current summarizes the newer report.
	Current ReportSummary `json:"current_report"`

	// Gained contains archives available now but not before.
	Gained []ArchiveChange `json:"gained_archives,omitempty"`

	// Lost contains archives available before but not now.
	Lost []ArchiveChange `json:"lost_archives,omitempty"`

	// AddedRevisions contains rows present only in the current report.
	AddedRevisions []string `json:"added_revisions,omitempty"`

	// RemovedRevisions contains rows present only in the previous report.
	RemovedRevisions []string `json:"removed_revisions,omitempty"`

	// UnchangedCells is the number of archive cells with the same state
	// in both reports.
	UnchangedCells int `json:"unchanged_cells"`

	// Trend is "improved", "worsened", or "unchanged".
	Trend string `json:"trend"`
}

// ReportSummary describes one input report for comparison display.
type ReportSummary struct {
	// Path is the file the report was loaded from.
	Path string `json:"path"`

	// Rows is the number of scanned revisions in the report.
	Rows int `json:"rows"`

	// Available is the number of archives reported present.
	Available int `json:"available_archives"`

	// Total is the number of archive cells in the report.
	Total int `json:"total_archives"`
}

// ArchiveChange identifies one archive whose availability changed.
type ArchiveChange struct {
	// Revision is the build position the archive belongs to.
	Revision model.Revision `json:"revision"`

	// Label is the feed label of the row, empty for range reports.
	Label string `json:"label,omitempty"`

	// Platform is the archive's target platform.
	Platform model.Platform `json:"platform"`
}

// rowKey identifies a row across reports. The label keeps feed rows for
// different channels apart even when they share a revision.
func rowKey(row report.JSONRow) string {
	return row.Label + "|" + row.Revision.String()
}

// rowDisplay renders a row reference for human-readable output.
func rowDisplay(row report.JSONRow) string {
	return strings.TrimSpace(row.Label + " " + row.Revision.String())
}

// availabilityByPlatform indexes a row's cells by platform.
func availabilityByPlatform(row report.JSONRow) map[model.Platform]bool {
	byPlatform := make(map[model.Platform]bool, len(row.Platforms))
	for _, cell := range row.Platforms {
		byPlatform[cell.Platform] = cell.Available
	}
	return byPlatform
}

// summarize counts the rows and available archives of one report.
func summarize(path string, doc *report.JSONReport) ReportSummary {
	summary := ReportSummary{
		Path: path,
		Rows: len(doc.Rows),
	}
	for _, row := range doc.Rows {
		for _, cell := range row.Platforms {
			summary.Total++
			if cell.Available {
				summary.Available++
			}
		}
	}
	return summary
}

// compareReports diffs two reports cell by cell.
//
// Rows are matched by label and revision. Both row lists are walked in
// report order so the output is deterministic.
func compareReports(previous, current *report.JSONReport, previousPath, currentPath string) *ComparisonResult {
	result := &ComparisonResult{
		Previous: summarize(previousPath, previous),
		Current:  summarize(currentPath, current),
	}

	previousRows := make(map[string]report.JSONRow, len(previous.Rows))
	for _, row := range previous.Rows {
		previousRows[rowKey(row)] = row
	}
	currentKeys := make(map[string]bool, len(current.Rows))
	for _, row := range current.Rows {
		currentKeys[rowKey(row)] = true
	}

	for _, row := range current.Rows {
		previousRow, exists := previousRows[rowKey(row)]
		if !exists {
			result.AddedRevisions = append(result.AddedRevisions, rowDisplay(row))
			continue
		}

		// A platform missing from the previous row counts as
		// unavailable before, so a present archive registers as gained.
		before := availabilityByPlatform(previousRow)
		for _, cell := range row.Platforms {
			wasAvailable := before[cell.Platform]
			switch {
			case cell.Available && !wasAvailable:
				result.Gained = append(result.Gained, ArchiveChange{
					Revision: row.Revision,
					Label:    row.Label,
					Platform: cell.Platform,
				})
			case !cell.Available && wasAvailable:
				result.Lost = append(result.Lost, ArchiveChange{
					Revision: row.Revision,
					Label:    row.Label,
					Platform: cell.Platform,
				})
			default:
				result.UnchangedCells++
			}
		}
	}

	for _, row := range previous.Rows {
		if !currentKeys[rowKey(row)] {
			result.RemovedRevisions = append(result.RemovedRevisions, rowDisplay(row))
		}
	}

	switch {
	case len(result.Gained) > len(result.Lost):
		result.Trend = trendImproved
	case len(result.Gained) < len(result.Lost):
		result.Trend = trendWorsened
	default:
		result.Trend = trendUnchanged
	}

	return result
}

// changeDisplay renders one archive change for human-readable output.
func changeDisplay(change ArchiveChange) string {
	if change.Label != "" {
		return fmt.Sprintf("%s %s %s", change.Label, change.Revision, change.Platform)
	}
	return fmt.Sprintf("%s %s", change.Revision, change.Platform)
}

// outputComparisonJSON outputs the comparison result in JSON format.
func outputComparisonJSON(out io.Writer, result *ComparisonResult) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// outputComparisonMarkdown outputs the comparison result in Markdown format.
func outputComparisonMarkdown(out io.Writer, result *ComparisonResult) error {
	fmt.Fprintf(out, "# Availability Comparison\n\n")
	fmt.Fprintf(out, "**Trend:** %s\n\n", formatTrend(result.Trend))

	fmt.Fprintln(out, "| Report | Rows | Available |")
	fmt.Fprintln(out, "|--------|------|-----------|")
	fmt.Fprintf(out, "| Previous (`%s`) | %d | %d/%d |\n",
		result.Previous.Path, result.Previous.Rows,
		result.Previous.Available, result.Previous.Total)
	fmt.Fprintf(out, "| Current (`%s`) | %d | %d/%d (%s) |\n",
		result.Current.Path, result.Current.Rows,
		result.Current.Available, result.Current.Total,
		formatDelta(result.Current.Available-result.Previous.Available))

	if len(result.Gained) > 0 {
		fmt.Fprintf(out, "\n## Gained Archives (%d)\n\n", len(result.Gained))
		for _, change := range result.Gained {
			fmt.Fprintf(out, "- %s\n", changeDisplay(change))
		}
	}

	if len(result.Lost) > 0 {
		fmt.Fprintf(out, "\n## Lost Archives (%d)\n\n", len(result.Lost))
		for _, change := range result.Lost {
			fmt.Fprintf(out, "- ~~%s~~\n", changeDisplay(change))
		}
	}

	if len(result.AddedRevisions) > 0 {
		fmt.Fprintf(out, "\n## New Revisions (%d)\n\n", len(result.AddedRevisions))
		for _, row := range result.AddedRevisions {
			fmt.Fprintf(out, "- %s\n", row)
		}
	}

	if len(result.RemovedRevisions) > 0 {
		fmt.Fprintf(out, "\n## Dropped Revisions (%d)\n\n", len(result.RemovedRevisions))
		for _, row := range result.RemovedRevisions {
			fmt.Fprintf(out, "- %s\n", row)
		}
	}

	if result.UnchangedCells > 0 {
		fmt.Fprintf(out, "\n---\n\n*%d archive cells unchanged*\n", result.UnchangedCells)
	}

	return nil
}

// outputComparisonText outputs the comparison result in human-readable
// text format.
func outputComparisonText(out io.Writer, result *ComparisonResult) error {
	fmt.Fprintln(out, "Availability Comparison")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fmt.Fprintf(out, "\nTrend: %s\n", formatTrend(result.Trend))

	fmt.Fprintf(out, "\nPrevious: %s (%d rows, %d/%d archives)\n",
		result.Previous.Path, result.Previous.Rows,
		result.Previous.Available, result.Previous.Total)
	fmt.Fprintf(out, "Current:  %s (%d rows, %d/%d archives, %s)\n",
		result.Current.Path, result.Current.Rows,
		result.Current.Available, result.Current.Total,
		formatDelta(result.Current.Available-result.Previous.Available))

	if len(result.Gained) > 0 {
		fmt.Fprintf(out, "\nGained Archives (%d):\n", len(result.Gained))
		for _, change := range result.Gained {
			fmt.Fprintf(out, "  [+] %s\n", changeDisplay(change))
		}
	}

	if len(result.Lost) > 0 {
		fmt.Fprintf(out, "\nLost Archives (%d):\n", len(result.Lost))
		for _, change := range result.Lost {
			fmt.Fprintf(out, "  [-] %s\n", changeDisplay(change))
		}
	}

	if len(result.AddedRevisions) > 0 {
		fmt.Fprintf(out, "\nNew Revisions (%d):\n", len(result.AddedRevisions))
		for _, row := range result.AddedRevisions {
			fmt.Fprintf(out, "  [+] %s\n", row)
		}
	}

	if len(result.RemovedRevisions) > 0 {
		fmt.Fprintf(out, "\nDropped Revisions (%d):\n", len(result.RemovedRevisions))
		for _, row := range result.RemovedRevisions {
			fmt.Fprintf(out, "  [-] %s\n", row)
		}
	}

	if result.UnchangedCells > 0 {
		fmt.Fprintf(out, "\nUnchanged: %d archive cells\n", result.UnchangedCells)
	}

	return nil
}

// formatTrend formats the availability trend for display.
func formatTrend(trend string) string {
	switch trend {
	case trendImproved:
		return "IMPROVED (archives appeared)"
	case trendWorsened:
		return "WORSENED (archives disappeared)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}
