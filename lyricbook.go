// Package lyricbook fetches song lyrics from a lyrics site and assembles
// them into an e-book. Each song query is resolved to a lyrics page, the
// page is pruned down to its title, metadata and lyric body, and the result
// is written to disk for an external document compiler.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, pandoc/).
package lyricbook
