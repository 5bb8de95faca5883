package report

import "github.com/fatih/color"

// Scheme bundles the color printers used by the table renderer.
//
// Design decision: We inject a Scheme into writers rather than reading
// process-wide color state at render time because:
//  1. The decision "is color on?" belongs to the CLI layer, made once
//  2. Tests get deterministic output regardless of the environment
//  3. Two writers with different schemes can coexist in one process
//
// A Scheme is immutable after construction and safe for concurrent use.
type Scheme struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// NewScheme returns the standard scheme: green for available, red for
// missing, yellow for warnings.
//
// When enabled is false the scheme never emits escape sequences; when
// true it always does, regardless of terminal detection. Callers decide
// enablement from --no-color and whether stdout is a terminal.
func NewScheme(enabled bool) *Scheme {
	s := &Scheme{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{s.green, s.red, s.yellow} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Green renders v in green.
func (s *Scheme) Green(v string) string {
	return s.green.Sprint(v)
}

// Red renders v in red.
func (s *Scheme) Red(v string) string {
	return s.red.Sprint(v)
}

// Yellow renders v in yellow.
func (s *Scheme) Yellow(v string) string {
	return s.yellow.Sprint(v)
}
