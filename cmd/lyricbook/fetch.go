package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/lyricbook"
	"github.com/fwojciec/lyricbook/catalog"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	songs, err := c.readSongs(deps)
	if err != nil {
		return err
	}

	if deps.Records == nil && deps.OpenRecords != nil {
		records, err := deps.OpenRecords()
		if err != nil {
			return err
		}
		deps.Records = records
	}

	progress := func(event catalog.ProgressEvent) {
		switch event.Type {
		case catalog.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Fetching lyrics for %d songs\n", event.Total)
		case catalog.ProgressSong:
			o := event.Outcome
			switch o.Status {
			case lyricbook.StatusPersisted:
				fmt.Fprintf(deps.Stdout, "  [%d/%d] saved %s\n", event.Completed, event.Total, o.Path)
			case lyricbook.StatusSkipped:
				fmt.Fprintf(deps.Stdout, "  [%d/%d] exists %s\n", event.Completed, event.Total, o.Path)
			case lyricbook.StatusNotFound:
				fmt.Fprintf(deps.Stderr, "  [%d/%d] not found: %s\n", event.Completed, event.Total, o.Song)
			case lyricbook.StatusFailed:
				fmt.Fprintf(deps.Stderr, "  [%d/%d] failed: %s: %v\n", event.Completed, event.Total, o.Song, o.Err)
			}
		case catalog.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	outcomes, err := deps.Catalog.Run(deps.Ctx, songs, progress)
	if err != nil {
		return err
	}

	c.record(deps, outcomes)

	sum := catalog.Summarize(outcomes)
	fmt.Fprintf(deps.Stdout, "  Saved %d (%s), skipped %d, not found %d, failed %d\n",
		sum.Persisted, catalog.FormatBytes(sum.Bytes), sum.Skipped, sum.NotFound, sum.Failed)

	manifest := lyricbook.Manifest(outcomes)
	if len(manifest) == 0 {
		return lyricbook.Errorf(lyricbook.EINVALID, "no lyric files to compile")
	}

	if c.NoCompile {
		return nil
	}

	if err := deps.Compiler.Compile(deps.Ctx, manifest); err != nil {
		if lyricbook.ErrorCode(err) == lyricbook.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: Install pandoc or run with --no-compile")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%d songs)\n", c.Output, len(manifest))
	return nil
}

// readSongs loads and parses the songs file.
func (c *FetchCmd) readSongs(deps *Dependencies) ([]lyricbook.Song, error) {
	f, err := os.Open(c.Songs)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(deps.Stderr, "Create a file named %q with one \"title / artist\" per line, for example:\n", c.Songs)
		fmt.Fprintf(deps.Stderr, "  Lemon / Kenshi Yonezu\n")
		return nil, lyricbook.Errorf(lyricbook.EINVALID, "songs file %q not found", c.Songs)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	songs, err := lyricbook.ParseSongs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Songs, err)
	}
	if len(songs) == 0 {
		return nil, lyricbook.Errorf(lyricbook.EINVALID, "no songs in %q", c.Songs)
	}
	return songs, nil
}

// record adds persisted songs to the download ledger. Ledger failures are
// reported and do not fail the run.
func (c *FetchCmd) record(deps *Dependencies, outcomes []lyricbook.Outcome) {
	if deps.Records == nil {
		return
	}
	for _, o := range outcomes {
		if o.Status != lyricbook.StatusPersisted {
			continue
		}
		r := &lyricbook.Record{
			Title:       o.Song.Title,
			Artist:      o.Song.Artist,
			SourceURL:   o.URL,
			FilePath:    o.Path,
			ContentHash: o.ContentHash,
		}
		if err := deps.Records.CreateRecord(deps.Ctx, r); err != nil {
			fmt.Fprintf(deps.Stderr, "  warning: history not updated for %s: %v\n", o.Song, err)
		}
	}
}
