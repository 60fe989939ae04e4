package mock

import (
	"context"

	"github.com/fwojciec/lyricbook"
)

var _ lyricbook.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of lyricbook.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, song lyricbook.Song) (string, error)
}

func (r *Resolver) Resolve(ctx context.Context, song lyricbook.Song) (string, error) {
	return r.ResolveFn(ctx, song)
}
