package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lyricbook"
	"github.com/fwojciec/lyricbook/catalog"
	"github.com/fwojciec/lyricbook/fs"
	"github.com/fwojciec/lyricbook/goquery"
	"github.com/fwojciec/lyricbook/htmltomarkdown"
	lbhttp "github.com/fwojciec/lyricbook/http"
	"github.com/fwojciec/lyricbook/pandoc"
	lbslog "github.com/fwojciec/lyricbook/slog"
	"github.com/fwojciec/lyricbook/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitCode(err))
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the download ledger.
	DB *sqlite.DB

	// Site addresses. Empty values use the utaten defaults.
	SearchURL string
	Origin    string

	// Compiler replaces pandoc when set. Used for end-to-end testing.
	Compiler lyricbook.Compiler
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lyricbook"),
		kong.Description("Download song lyrics and bind them into an e-book."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Debug {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "fetch":
		deps.OpenRecords = func() (lyricbook.RecordService, error) {
			if err := m.openDB(stderr); err != nil {
				return nil, err
			}
			return sqlite.NewRecordService(m.DB), nil
		}
		defer m.Close()

		m.wireSite(cli, deps, cli.Fetch.PageBreak)
		defer deps.Fetcher.Close()

		var store lyricbook.LyricStore = fs.NewStore(cli.Fetch.Dir)
		if cli.Debug {
			store = lbslog.NewLoggingStore(store, deps.Logger)
		}
		deps.Catalog = &catalog.Catalog{
			Resolver:    deps.Resolver,
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			Store:       store,
			Concurrency: cli.Fetch.Concurrency,
		}

		deps.Compiler = m.Compiler
		if deps.Compiler == nil {
			deps.Compiler = pandoc.NewCompiler(
				pandoc.WithExecutable(cli.Fetch.Pandoc),
				pandoc.WithOutput(cli.Fetch.Output),
				pandoc.WithStylesheet(cli.Fetch.CSS),
				pandoc.WithMetadata(cli.Fetch.Metadata),
				pandoc.WithFont(cli.Fetch.Font),
				pandoc.WithOutputWriters(stdout, stderr),
			)
		}
		if cli.Debug {
			deps.Compiler = lbslog.NewLoggingCompiler(deps.Compiler, deps.Logger)
		}

	case "preview":
		m.wireSite(cli, deps, false)
		defer deps.Fetcher.Close()

		var opts []htmltomarkdown.Option
		if !cli.Preview.Readings {
			opts = append(opts, htmltomarkdown.WithoutReadings())
		}
		deps.Converter = htmltomarkdown.NewConverter(opts...)

	case "history":
		if err := m.openDB(stderr); err != nil {
			return err
		}
		defer m.Close()
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	return kongCtx.Run(deps)
}

// openDB opens the download ledger.
func (m *Main) openDB(stderr io.Writer) error {
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(stderr, "Hint: Set LYRICBOOK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return nil
}

// wireSite builds the resolver, fetcher and extractor for the lyrics site.
func (m *Main) wireSite(cli *CLI, deps *Dependencies, pageBreak bool) {
	fetchOpts := []lbhttp.Option{lbhttp.WithTimeout(cli.Timeout)}
	if cli.Rate > 0 {
		fetchOpts = append(fetchOpts, lbhttp.WithLimiter(lbhttp.NewHostLimiter(cli.Rate)))
	}
	var fetcher lyricbook.Fetcher = lbhttp.NewFetcher(fetchOpts...)

	var resolverOpts []goquery.ResolverOption
	if m.SearchURL != "" {
		resolverOpts = append(resolverOpts, goquery.WithSearchURL(m.SearchURL))
	}

	extractorOpts := []goquery.ExtractorOption{goquery.WithPageBreak(pageBreak)}
	if m.Origin != "" {
		extractorOpts = append(extractorOpts, goquery.WithOrigin(m.Origin))
	}

	if cli.Debug {
		fetcher = lbslog.NewLoggingFetcher(fetcher, deps.Logger)
	}
	deps.Fetcher = fetcher

	var resolver lyricbook.Resolver = goquery.NewResolver(fetcher, resolverOpts...)
	var extractor lyricbook.Extractor = goquery.NewExtractor(extractorOpts...)
	if cli.Debug {
		resolver = lbslog.NewLoggingResolver(resolver, deps.Logger)
		extractor = lbslog.NewLoggingExtractor(extractor, deps.Logger)
	}
	deps.Resolver = resolver
	deps.Extractor = extractor
}

// ExitCode returns the process exit status for an error returned by Run.
// A failed compiler run passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

func defaultDBPath() string {
	if path := os.Getenv("LYRICBOOK_DB"); path != "" {
		return path
	}
	return ".lyricbook.db"
}
