package main

import (
	"fmt"

	"github.com/fwojciec/lyricbook"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	song, err := lyricbook.ParseSong(c.Query)
	if err != nil {
		return err
	}

	addr, err := deps.Resolver.Resolve(deps.Ctx, song)
	if lyricbook.ErrorCode(err) == lyricbook.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "No lyrics found for %s\n", song)
		return err
	}
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, addr)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", addr, err)
	}

	lyric, err := deps.Extractor.Extract(html)
	if err != nil {
		return fmt.Errorf("extract %s: %w", addr, err)
	}

	md, err := deps.Converter.Convert(string(lyric.HTML))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n%s\n\n%s\n", song, addr, md)
	return nil
}
