package mock

import "github.com/fwojciec/lyricbook"

var _ lyricbook.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lyricbook.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*lyricbook.Lyric, error)
}

func (e *Extractor) Extract(html string) (*lyricbook.Lyric, error) {
	return e.ExtractFn(html)
}
