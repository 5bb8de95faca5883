package report

import (
	"regexp"
	"strings"
)

// colorMarker matches the ANSI SGR escape sequences the Scheme emits
// (for example "\x1b[32m" and "\x1b[0m"). The visible width of a cell
// is its length once every such marker is removed; the markers occupy
// no terminal columns.
var colorMarker = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripColors returns text with every color marker removed.
func StripColors(text string) string {
	return colorMarker.ReplaceAllString(text, "")
}

// VisibleWidth returns the number of terminal columns text occupies,
// ignoring embedded color markers.
func VisibleWidth(text string) int {
	return len(StripColors(text))
}

// PadLeft prepends spaces until text occupies width visible columns.
// Text already at least width wide is returned unchanged.
//
// The pad count is computed from the visible width, so colored and
// uncolored versions of the same text align identically.
func PadLeft(text string, width int) string {
	visible := VisibleWidth(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", width-visible) + text
}

// PadCenter surrounds text with spaces until it occupies width visible
// columns. When the padding is odd the extra space goes on the right.
// Text already at least width wide is returned unchanged.
func PadCenter(text string, width int) string {
	visible := VisibleWidth(text)
	if visible >= width {
		return text
	}
	padding := width - visible
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
