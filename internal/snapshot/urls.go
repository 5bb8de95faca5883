package snapshot

import (
	"fmt"

	"github.com/thobhanifreddy/puppeteer/internal/model"
)

// DefaultHost is the public bucket serving Chromium snapshot archives.
const DefaultHost = "https://storage.googleapis.com"

// bucketPath is the path component shared by every snapshot archive.
const bucketPath = "chromium-browser-snapshots"

// winArchiveRenameRevision is the build position at which the Windows
// archive changed its basename from chrome-win32 to chrome-win.
// Revisions strictly greater than this use the new name.
const winArchiveRenameRevision model.Revision = 591479

// platformDirs maps each platform to its directory in the bucket.
var platformDirs = map[model.Platform]string{
	model.PlatformLinux: "Linux_x64",
	model.PlatformMac:   "Mac",
	model.PlatformWin32: "Win",
	model.PlatformWin64: "Win_x64",
}

// ArchiveName returns the basename (without the .zip extension) of the
// snapshot archive for a platform at the given revision.
func ArchiveName(platform model.Platform, revision model.Revision) string {
	switch platform {
	case model.PlatformLinux:
		return "chrome-linux"
	case model.PlatformMac:
		return "chrome-mac"
	case model.PlatformWin32, model.PlatformWin64:
		if revision > winArchiveRenameRevision {
			return "chrome-win"
		}
		return "chrome-win32"
	default:
		return ""
	}
}

// DownloadURL returns the full archive URL for a platform and revision
// under the given host.
func DownloadURL(host string, platform model.Platform, revision model.Revision) string {
	return fmt.Sprintf("%s/%s/%s/%d/%s.zip",
		host, bucketPath, platformDirs[platform], revision, ArchiveName(platform, revision))
}
