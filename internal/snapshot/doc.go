// Package snapshot probes Chromium's snapshot storage for prebuilt
// browser archives.
//
// The storage bucket holds one zip archive per (platform, revision)
// pair under a fixed path layout. A probe is a single HTTP HEAD
// request: status 200 means the archive exists, anything else -
// including transport failures - means it cannot be downloaded.
//
// Design decision: Probes never return errors. A revision×platform
// cell in the report has exactly two states, available or not, and an
// unreachable bucket is indistinguishable from a missing archive at
// that granularity. Failures are logged at debug level so --verbose
// can tell the two apart.
package snapshot
