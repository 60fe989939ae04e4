package main

import (
	"fmt"

	"github.com/fwojciec/lyricbook"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := lyricbook.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Artist != "" {
		filter.Artist = &c.Artist
	}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No lyrics downloaded yet. Use 'lyricbook fetch' to download some.")
		return nil
	}

	for _, r := range records {
		song := lyricbook.Song{Title: r.Title, Artist: r.Artist}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.FetchedAt.Local().Format("2006-01-02 15:04"), song, r.FilePath)
	}

	return nil
}
