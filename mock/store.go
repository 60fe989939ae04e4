package mock

import (
	"context"

	"github.com/fwojciec/lyricbook"
)

var _ lyricbook.LyricStore = (*LyricStore)(nil)

// LyricStore is a mock implementation of lyricbook.LyricStore.
type LyricStore struct {
	InitFn   func() error
	PathFn   func(name string) string
	ExistsFn func(name string) (bool, error)
	SaveFn   func(ctx context.Context, name string, data []byte) error
}

func (s *LyricStore) Init() error {
	return s.InitFn()
}

func (s *LyricStore) Path(name string) string {
	return s.PathFn(name)
}

func (s *LyricStore) Exists(name string) (bool, error) {
	return s.ExistsFn(name)
}

func (s *LyricStore) Save(ctx context.Context, name string, data []byte) error {
	return s.SaveFn(ctx, name, data)
}
