package lyricbook

// Lyric holds the pruned content extracted from a lyrics page.
type Lyric struct {
	// Title is the bare song title with the site's suffix removed.
	Title string

	// HTML is the serialized pruned document: a container holding the
	// title, metadata and body regions in that order, optionally followed
	// by a page-break marker.
	HTML []byte
}

// Extractor prunes a lyrics page down to its title, metadata and body.
type Extractor interface {
	// Extract parses raw HTML and returns the pruned document.
	// Returns a *MissingRegionError if any of the three regions is absent.
	Extract(html string) (*Lyric, error)
}
