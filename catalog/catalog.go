// Package catalog orchestrates lyric downloads. For each song it derives
// the output file name, skips songs already on disk, and otherwise runs the
// resolve, fetch, extract and save pipeline.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/lyricbook"
	"golang.org/x/sync/errgroup"
)

// Catalog downloads the lyrics for a list of songs.
type Catalog struct {
	Resolver  lyricbook.Resolver
	Fetcher   lyricbook.Fetcher
	Extractor lyricbook.Extractor
	Store     lyricbook.LyricStore

	// Concurrency bounds the number of songs processed at once.
	// Values below 2 process songs strictly one after another.
	Concurrency int
}

// ProgressEvent reports progress during a catalog run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Outcome   lyricbook.Outcome
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSong
	ProgressFinished
)

// ProgressFunc is a callback for reporting catalog progress.
// Calls are never concurrent.
type ProgressFunc func(event ProgressEvent)

// Run processes songs and returns one outcome per song in input order.
//
// Per-song faults are recorded on the outcome with StatusFailed and do not
// stop the run. An error is returned only if the output location cannot be
// created or ctx is canceled.
func (c *Catalog) Run(ctx context.Context, songs []lyricbook.Song, progress ProgressFunc) ([]lyricbook.Outcome, error) {
	if err := c.Store.Init(); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	total := len(songs)
	notify := func(e ProgressEvent) {
		if progress != nil {
			progress(e)
		}
	}
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	outcomes := make([]lyricbook.Outcome, total)
	conflicts := claimFilenames(songs)

	if c.Concurrency < 2 {
		for i, song := range songs {
			if err := ctx.Err(); err != nil {
				return outcomes[:i], err
			}
			outcomes[i] = c.process(ctx, song, conflicts[i])
			notify(ProgressEvent{Type: ProgressSong, Completed: i + 1, Total: total, Outcome: outcomes[i]})
		}
	} else {
		var mu sync.Mutex
		completed := 0

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.Concurrency)
		for i, song := range songs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				// Each worker owns its slot, so input order survives.
				outcomes[i] = c.process(gctx, song, conflicts[i])

				mu.Lock()
				completed++
				notify(ProgressEvent{Type: ProgressSong, Completed: completed, Total: total, Outcome: outcomes[i]})
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return outcomes, nil
}

// claimFilenames returns, per song, an ECONFLICT error if an earlier song
// with a different query derives the same file name. Repeats of the same
// query share the file and are not conflicts.
func claimFilenames(songs []lyricbook.Song) []error {
	errs := make([]error, len(songs))
	owners := make(map[string]lyricbook.Song, len(songs))
	for i, song := range songs {
		name := song.Filename()
		owner, ok := owners[name]
		if !ok {
			owners[name] = song
			continue
		}
		if owner != song {
			errs[i] = lyricbook.Errorf(lyricbook.ECONFLICT, "file name %q is already used by %q", name, owner.String())
		}
	}
	return errs
}

// process runs the pipeline for a single song. A non-nil conflict fails
// the song before anything is looked up.
func (c *Catalog) process(ctx context.Context, song lyricbook.Song, conflict error) lyricbook.Outcome {
	name := song.Filename()
	o := lyricbook.Outcome{
		Song:   song,
		Status: lyricbook.StatusPending,
		Path:   c.Store.Path(name),
	}
	fail := func(err error) lyricbook.Outcome {
		o.Status = lyricbook.StatusFailed
		o.Err = err
		return o
	}

	if conflict != nil {
		return fail(conflict)
	}

	exists, err := c.Store.Exists(name)
	if err != nil {
		return fail(fmt.Errorf("check %s: %w", o.Path, err))
	}
	if exists {
		o.Status = lyricbook.StatusSkipped
		return o
	}

	addr, err := c.Resolver.Resolve(ctx, song)
	if lyricbook.ErrorCode(err) == lyricbook.ENOTFOUND {
		o.Status = lyricbook.StatusNotFound
		return o
	}
	if err != nil {
		return fail(fmt.Errorf("resolve: %w", err))
	}
	o.Status = lyricbook.StatusResolved
	o.URL = addr

	html, err := c.Fetcher.Fetch(ctx, addr)
	if err != nil {
		return fail(fmt.Errorf("fetch %s: %w", addr, err))
	}

	lyric, err := c.Extractor.Extract(html)
	if err != nil {
		return fail(fmt.Errorf("extract %s: %w", addr, err))
	}

	if err := c.Store.Save(ctx, name, lyric.HTML); err != nil {
		if lyricbook.ErrorCode(err) == lyricbook.ECONFLICT {
			// Another worker wrote the same file first.
			o.Status = lyricbook.StatusSkipped
			return o
		}
		return fail(fmt.Errorf("save %s: %w", o.Path, err))
	}

	o.Status = lyricbook.StatusPersisted
	o.Title = lyric.Title
	o.ContentHash = ComputeHash(lyric.HTML)
	o.Bytes = len(lyric.HTML)
	return o
}
