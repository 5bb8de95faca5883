// Package feed fetches the current Chromium release positions from the
// public version feed.
//
// The feed is a JSON document listing, per operating system, the
// versions currently served on each release channel. The checker keeps
// only the (os, channel) pairs that have snapshot archives: mac, win,
// win64 and linux on the dev, beta, canary and stable channels.
package feed
