package goquery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lyricbook"
)

// DefaultSearchURL is the lyric search endpoint.
const DefaultSearchURL = "https://utaten.com/lyric/search"

// DefaultResultSelector matches the links of the search listing.
const DefaultResultSelector = ".searchResult__title a[href]"

var _ lyricbook.Resolver = (*Resolver)(nil)

// Resolver finds lyrics pages by querying the site's search listing.
// The first result wins; there is no ranking and no pagination.
type Resolver struct {
	fetcher        lyricbook.Fetcher
	searchURL      string
	resultSelector string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSearchURL sets the search endpoint. Result links are resolved
// against it, so it also determines the origin of returned addresses.
func WithSearchURL(u string) ResolverOption {
	return func(r *Resolver) {
		r.searchURL = u
	}
}

// WithResultSelector sets the CSS selector for search result links.
func WithResultSelector(sel string) ResolverOption {
	return func(r *Resolver) {
		r.resultSelector = sel
	}
}

// NewResolver creates a Resolver that issues searches through fetcher.
func NewResolver(fetcher lyricbook.Fetcher, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		fetcher:        fetcher,
		searchURL:      DefaultSearchURL,
		resultSelector: DefaultResultSelector,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve searches for the song by title and artist and returns the
// absolute URL of the first result.
func (r *Resolver) Resolve(ctx context.Context, song lyricbook.Song) (string, error) {
	if err := song.Validate(); err != nil {
		return "", err
	}

	search, err := r.searchAddress(song)
	if err != nil {
		return "", err
	}

	body, err := r.fetcher.Fetch(ctx, search.String())
	if lyricbook.ErrorCode(err) == lyricbook.ENOTFOUND {
		// A missing search page is a site fault, not an empty listing.
		return "", lyricbook.Errorf(lyricbook.EINTERNAL, "search %q: %v", song.String(), err)
	}
	if err != nil {
		return "", fmt.Errorf("search %q: %w", song.String(), err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", lyricbook.Errorf(lyricbook.EINVALID, "failed to parse search results: %v", err)
	}

	link := doc.Find(r.resultSelector).First()
	if link.Length() == 0 {
		return "", lyricbook.Errorf(lyricbook.ENOTFOUND, "no search results for %q", song.String())
	}

	href := strings.TrimSpace(link.AttrOr("href", ""))
	if href == "" {
		return "", lyricbook.Errorf(lyricbook.EINVALID, "search result for %q has no link", song.String())
	}

	return absoluteURL(search, href), nil
}

// searchAddress builds the search URL with title and artist as
// independent query parameters.
func (r *Resolver) searchAddress(song lyricbook.Song) (*url.URL, error) {
	u, err := url.Parse(r.searchURL)
	if err != nil {
		return nil, lyricbook.Errorf(lyricbook.EINVALID, "invalid search URL: %v", err)
	}
	q := u.Query()
	q.Set("artist_name", song.Artist)
	q.Set("title", song.Title)
	u.RawQuery = q.Encode()
	return u, nil
}
