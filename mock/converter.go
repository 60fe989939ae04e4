package mock

import "github.com/fwojciec/lyricbook"

var _ lyricbook.Converter = (*Converter)(nil)

// Converter is a mock implementation of lyricbook.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
