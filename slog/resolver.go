package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lyricbook"
)

// Ensure LoggingResolver implements lyricbook.Resolver.
var _ lyricbook.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with debug logging.
type LoggingResolver struct {
	next   lyricbook.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next lyricbook.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the search.
func (r *LoggingResolver) Resolve(ctx context.Context, song lyricbook.Song) (url string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"title", song.Title,
			"artist", song.Artist,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Resolve(ctx, song)
}
