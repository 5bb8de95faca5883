package model

// Channel represents a Chromium release track as reported by the
// upstream version feed.
type Channel string

// Release channel constants.
// These are the four channels the checker retains; entries on any other
// track (canary_asan, extended, ...) are discarded during feed parsing.
const (
	// ChannelDev represents the dev channel.
	ChannelDev Channel = "dev"
	// ChannelBeta represents the beta channel.
	ChannelBeta Channel = "beta"
	// ChannelCanary represents the canary channel.
	ChannelCanary Channel = "canary"
	// ChannelStable represents the stable channel.
	ChannelStable Channel = "stable"
)

// String returns the string representation of the Channel.
func (c Channel) String() string {
	return string(c)
}

// IsValid returns true if this is one of the four retained channels.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelDev, ChannelBeta, ChannelCanary, ChannelStable:
		return true
	default:
		return false
	}
}

// ParseChannel converts a string to Channel.
// Unrecognized values return the empty Channel, which is not valid.
func ParseChannel(s string) Channel {
	switch s {
	case "dev":
		return ChannelDev
	case "beta":
		return ChannelBeta
	case "canary":
		return ChannelCanary
	case "stable":
		return ChannelStable
	default:
		return Channel("")
	}
}
