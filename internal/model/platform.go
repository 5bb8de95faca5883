package model

// Platform represents a target platform for which prebuilt Chromium
// snapshot archives are published.
type Platform string

// Supported platform constants.
//
// The declaration order here is a contract: availability rows align
// their cells with this exact sequence, and the report header prints
// the platforms in this order. Keep new platforms at the end.
const (
	// PlatformLinux represents 64-bit Linux.
	PlatformLinux Platform = "linux"
	// PlatformMac represents macOS.
	PlatformMac Platform = "mac"
	// PlatformWin32 represents 32-bit Windows.
	PlatformWin32 Platform = "win32"
	// PlatformWin64 represents 64-bit Windows.
	PlatformWin64 Platform = "win64"
)

// supportedPlatforms is the canonical ordered platform set.
var supportedPlatforms = []Platform{
	PlatformLinux,
	PlatformMac,
	PlatformWin32,
	PlatformWin64,
}

// SupportedPlatforms returns the supported platforms in their fixed
// column order. The returned slice is a copy, so callers may modify it
// without affecting the canonical order.
func SupportedPlatforms() []Platform {
	platforms := make([]Platform, len(supportedPlatforms))
	copy(platforms, supportedPlatforms)
	return platforms
}

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid returns true if this is a supported platform.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformLinux, PlatformMac, PlatformWin32, PlatformWin64:
		return true
	default:
		return false
	}
}

// ParsePlatform converts a string to Platform.
// Unrecognized values return the empty Platform, which is not valid.
func ParsePlatform(s string) Platform {
	switch s {
	case "linux":
		return PlatformLinux
	case "mac":
		return PlatformMac
	case "win32":
		return PlatformWin32
	case "win64":
		return PlatformWin64
	default:
		return Platform("")
	}
}
