// Package report renders availability results.
//
// This package contains writers for different output formats:
//   - TableWriter: Aligned, color-coded table for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown table
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: We separate report writing from report data structures
// (which are in the model package) to follow the single responsibility
// principle. This allows adding new output formats without modifying
// the core data structures.
//
// Writers implement the RowWriter interface, allowing them to be used
// interchangeably. The terminal table streams each row as it is scanned;
// the markdown and JSON writers buffer rows and emit the document when
// Flush is called.
package report
