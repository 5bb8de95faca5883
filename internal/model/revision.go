package model

import (
	"fmt"
	"strconv"
)

// Revision represents a Chromium build position. Build positions grow
// monotonically, so revisions compare with plain integer semantics and
// have no assumed upper bound.
type Revision int

// ParseRevision parses s as a base-10 revision.
//
// Parsing is strict: the whole string must be an integer. Rejecting
// partial input here means a mistyped revision fails immediately
// instead of producing a scan over a garbage range.
func ParseRevision(s string) (Revision, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid revision %q: must be an integer", s)
	}
	return Revision(n), nil
}

// String returns the revision in decimal form.
func (r Revision) String() string {
	return strconv.Itoa(int(r))
}
