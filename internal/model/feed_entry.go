package model

// Feed OS identifiers accepted by the checker. The feed reports 32-bit
// Windows as "win"; it is relabeled "win32" for display while every
// other identifier passes through unchanged.
const (
	feedOSMac   = "mac"
	feedOSWin   = "win"
	feedOSWin64 = "win64"
	feedOSLinux = "linux"
)

// FeedEntry is one (os, channel, revision) triple from the upstream
// version feed, after filtering to the supported OS and channel sets.
type FeedEntry struct {
	// OS is the feed's operating system identifier:
	// mac, win, win64, or linux.
	OS string

	// Channel is the release track the revision belongs to.
	Channel Channel

	// Revision is the branch base position for this os/channel pair.
	Revision Revision
}

// SupportedFeedOS returns true if os is one of the feed identifiers the
// checker retains. Everything else the feed lists (ios, android, cros,
// webview, ...) has no snapshot archives and is dropped.
func SupportedFeedOS(os string) bool {
	switch os {
	case feedOSMac, feedOSWin, feedOSWin64, feedOSLinux:
		return true
	default:
		return false
	}
}

// DisplayOS returns the label form of the entry's OS: "win" is shown
// as "win32", all other identifiers are shown unchanged.
func (e FeedEntry) DisplayOS() string {
	if e.OS == feedOSWin {
		return "win32"
	}
	return e.OS
}
