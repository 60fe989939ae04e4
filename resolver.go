package lyricbook

import "context"

// Resolver turns a song query into the address of its lyrics page.
type Resolver interface {
	// Resolve searches for the song and returns the absolute URL of the
	// first result. Returns ENOTFOUND if the search listing is empty.
	Resolve(ctx context.Context, song Song) (url string, err error)
}
