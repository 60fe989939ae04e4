package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lyricbook"
)

// Ensure LoggingStore implements lyricbook.LyricStore.
var _ lyricbook.LyricStore = (*LoggingStore)(nil)

// LoggingStore wraps a LyricStore, logging saves.
type LoggingStore struct {
	next   lyricbook.LyricStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next lyricbook.LyricStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Init delegates to the wrapped store.
func (s *LoggingStore) Init() error {
	return s.next.Init()
}

// Path delegates to the wrapped store.
func (s *LoggingStore) Path(name string) string {
	return s.next.Path(name)
}

// Exists delegates to the wrapped store.
func (s *LoggingStore) Exists(name string) (bool, error) {
	return s.next.Exists(name)
}

// Save delegates to the wrapped store and logs the write.
func (s *LoggingStore) Save(ctx context.Context, name string, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save",
			"path", s.next.Path(name),
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, name, data)
}
