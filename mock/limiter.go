package mock

import (
	"context"

	"github.com/fwojciec/lyricbook"
)

var _ lyricbook.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of lyricbook.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
