package feed

import "errors"

// ErrFeedUnavailable is returned when the feed endpoint answers with a
// non-success status. The response body is not inspected; the feed has
// no partial-failure mode worth parsing.
var ErrFeedUnavailable = errors.New("revision feed unavailable")
