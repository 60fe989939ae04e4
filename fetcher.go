package lyricbook

import "context"

// Fetcher retrieves raw HTML from URLs.
// It is shared by the Resolver (search listings) and the page download.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
