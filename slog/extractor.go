package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/lyricbook"
)

// Ensure LoggingExtractor implements lyricbook.Extractor.
var _ lyricbook.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   lyricbook.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lyricbook.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the fragment size.
func (e *LoggingExtractor) Extract(html string) (lyric *lyricbook.Lyric, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if lyric != nil {
			title = lyric.Title
			size = len(lyric.HTML)
		}
		e.logger.Info("extract",
			"title", title,
			"in", len(html),
			"out", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
