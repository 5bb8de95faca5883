package snapshot

import (
	"context"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// Prober reports whether snapshot archives exist.
//
// Design decision: We use an interface rather than the concrete Client
// because:
//  1. The scanner only needs the yes/no answer, not HTTP details
//  2. Allows for easy stubbing in scanner tests
//  3. Alternative backends (local mirror index, cache) can slot in later
type Prober interface {
	// Platforms returns the probe's supported platforms in stable
	// column order. Availability rows align their cells with this order.
	Platforms() []model.Platform

	// CanDownload reports whether the snapshot archive for platform at
	// revision exists. Implementations swallow failures: a probe that
	// cannot complete reports the archive as unavailable.
	CanDownload(ctx context.Context, platform model.Platform, revision model.Revision) bool
}
