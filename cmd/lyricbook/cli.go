package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lyricbook"
	"github.com/fwojciec/lyricbook/catalog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Catalog   *catalog.Catalog
	Compiler  lyricbook.Compiler
	Records   lyricbook.RecordService
	Resolver  lyricbook.Resolver
	Fetcher   lyricbook.Fetcher
	Extractor lyricbook.Extractor
	Converter lyricbook.Converter

	// OpenRecords opens the download ledger on demand. fetch calls it once
	// the songs file has been read, so bad input leaves no database behind.
	OpenRecords func() (lyricbook.RecordService, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool          `help:"Log every network and file operation to stderr"`
	Timeout time.Duration `default:"10s" help:"Per-request timeout"`
	Rate    float64       `default:"1" help:"Requests per second per host (0 disables limiting)"`

	Fetch   FetchCmd   `cmd:"" default:"withargs" help:"Download lyrics for every song in the songs file and build an e-book"`
	Preview PreviewCmd `cmd:"" help:"Print the lyrics of one song as Markdown without saving anything"`
	History HistoryCmd `cmd:"" help:"List previously downloaded lyrics"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Songs       string `short:"s" default:"songs" help:"File with one \"title / artist\" query per line"`
	Dir         string `short:"d" default:"lyrics" help:"Directory for downloaded lyric files"`
	Concurrency int    `short:"c" default:"1" help:"Songs processed at once"`
	PageBreak   bool   `default:"true" negatable:"" help:"End each lyric file with a page break"`
	NoCompile   bool   `help:"Download only, skip building the e-book"`
	Output      string `short:"o" default:"lyrics.epub" help:"E-book output path"`
	CSS         string `name:"css" default:"style.css" help:"Stylesheet for the e-book"`
	Metadata    string `default:"metadata.xml" help:"EPUB metadata file"`
	Font        string `default:"font.ttf" help:"Font embedded in the e-book"`
	Pandoc      string `default:"pandoc" help:"Document converter executable"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	Query    string `arg:"" help:"Song as \"title / artist\""`
	Readings bool   `default:"true" negatable:"" help:"Show furigana readings in parentheses"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Artist string `short:"a" help:"Only show songs by this artist"`
	Title  string `short:"t" help:"Only show songs with this title"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of entries (0 for all)"`
	Offset int    `help:"Entries to skip"`
}
