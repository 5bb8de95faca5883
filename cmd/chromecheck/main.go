// Package main provides the entry point for the chromecheck CLI.
//
// chromecheck reports whether prebuilt Chromium snapshot archives exist for
// the linux, mac, win32, and win64 platforms, either for the revisions the
// release feed currently points at or for an explicit revision range.
//
// Usage:
//
//	chromecheck
//	chromecheck <fromRevision> <toRevision>
//
// See --help for all available options.
package main

// main is the entry point for chromecheck.
func main() {
	Execute()
}
