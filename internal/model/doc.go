// Package model defines the core data structures used throughout the
// availability checker.
//
// This package contains the following main types:
//   - Platform: A snapshot target platform (linux, mac, win32, win64)
//   - Revision: A Chromium build position
//   - Channel: A release track reported by the version feed
//   - FeedEntry: One (os, channel, revision) triple from the feed
//   - AvailabilityRow: Per-revision availability across all platforms
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (snapshot, feed, scan, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
