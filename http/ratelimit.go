package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/lyricbook"
	"golang.org/x/time/rate"
)

var _ lyricbook.HostLimiter = (*HostLimiter)(nil)

// HostLimiter paces requests with one token bucket per host.
//
// Every song costs a search request and a lyrics page request, both to the
// lyrics site, so the two draw from the same bucket and a song list of n
// entries takes at least (2n-1)/rps seconds. Host names are compared case
// insensitively and without a leading "www.".
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewHostLimiter returns a limiter allowing rps requests per second to each
// host, without bursting. A non-positive rps disables pacing.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a request to host may be sent or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	return h.bucket(host).Wait(ctx)
}

func (h *HostLimiter) bucket(host string) *rate.Limiter {
	key := strings.TrimPrefix(strings.ToLower(host), "www.")

	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.buckets[key]
	if !ok {
		b = rate.NewLimiter(h.limit, 1)
		h.buckets[key] = b
	}
	return b
}
