package model

// AvailabilityRow is one line of the availability report: a display
// label plus one availability flag per supported platform for a single
// revision.
//
// The Availability slice is aligned 1:1 with the platform order the
// scanner was built with. Rows are value objects: the scanner builds
// each one exactly once and the report writers only read them.
type AvailabilityRow struct {
	// Label is the row prefix. It is empty in range mode and
	// "[<os> <channel>]" in feed mode.
	Label string

	// Revision is the build position this row describes.
	Revision Revision

	// Availability holds one entry per platform, in the scanner's
	// fixed platform order.
	Availability []bool
}

// AllAvailable returns true if the revision has a snapshot archive for
// every platform in the row.
func (r *AvailabilityRow) AllAvailable() bool {
	for _, available := range r.Availability {
		if !available {
			return false
		}
	}
	return true
}
