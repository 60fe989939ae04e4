package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	lbhttp "github.com/fwojciec/lyricbook/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request of a run is not delayed", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("page request waits for the search request of the same song", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("www prefix and case share the site bucket", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "www.utaten.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "UTATEN.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("other hosts are paced independently", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "cdn.utaten.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("non-positive rate disables pacing", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(0)

		start := time.Now()
		for range 10 {
			require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("gives up when the run is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "utaten.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "utaten.com"))
	})

	t.Run("concurrent workers share one bucket", func(t *testing.T) {
		t.Parallel()

		limiter := lbhttp.NewHostLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		start := time.Now()
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Wait(context.Background(), "utaten.com") == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})
}

func TestFetcher_PacesSearchAndPage(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var hits []time.Time
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		mu.Unlock()
		fmt.Fprint(w, "<html></html>")
	}))
	t.Cleanup(server.Close)

	fetcher := lbhttp.NewFetcher(lbhttp.WithLimiter(lbhttp.NewHostLimiter(20)))
	t.Cleanup(func() { fetcher.Close() })

	// Two songs: search then lyrics page for each.
	for _, path := range []string{"/lyric/search?title=A", "/lyric/a/", "/lyric/search?title=B", "/lyric/b/"} {
		_, err := fetcher.Fetch(context.Background(), server.URL+path)
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, hits, 4)
	assert.GreaterOrEqual(t, hits[3].Sub(hits[0]), 120*time.Millisecond)
}
