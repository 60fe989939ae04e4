// Package pandoc implements lyricbook.Compiler by running the pandoc
// executable to bundle lyric files into an EPUB.
package pandoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/fwojciec/lyricbook"
)

// Defaults for the compiler invocation.
const (
	DefaultExecutable = "pandoc"
	DefaultOutput     = "lyrics.epub"
	DefaultStylesheet = "style.css"
	DefaultMetadata   = "metadata.xml"
	DefaultFont       = "font.ttf"
)

// Ensure Compiler implements lyricbook.Compiler at compile time.
var _ lyricbook.Compiler = (*Compiler)(nil)

// Compiler runs pandoc over the manifest with a fixed style sheet,
// metadata file and embedded font.
type Compiler struct {
	executable string
	output     string
	stylesheet string
	metadata   string
	font       string
	toc        bool
	stdout     io.Writer
	stderr     io.Writer
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithExecutable sets the pandoc executable name or path.
func WithExecutable(path string) Option {
	return func(c *Compiler) {
		c.executable = path
	}
}

// WithOutput sets the path of the generated book.
func WithOutput(path string) Option {
	return func(c *Compiler) {
		c.output = path
	}
}

// WithStylesheet sets the CSS file. An empty path omits --css.
func WithStylesheet(path string) Option {
	return func(c *Compiler) {
		c.stylesheet = path
	}
}

// WithMetadata sets the EPUB metadata file. An empty path omits --epub-metadata.
func WithMetadata(path string) Option {
	return func(c *Compiler) {
		c.metadata = path
	}
}

// WithFont sets the font to embed. An empty path omits --epub-embed-font.
func WithFont(path string) Option {
	return func(c *Compiler) {
		c.font = path
	}
}

// WithTOC controls the table of contents. Enabled by default.
func WithTOC(enabled bool) Option {
	return func(c *Compiler) {
		c.toc = enabled
	}
}

// WithOutputWriters forwards pandoc's stdout and stderr.
func WithOutputWriters(stdout, stderr io.Writer) Option {
	return func(c *Compiler) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// NewCompiler creates a Compiler with the default file names.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		executable: DefaultExecutable,
		output:     DefaultOutput,
		stylesheet: DefaultStylesheet,
		metadata:   DefaultMetadata,
		font:       DefaultFont,
		toc:        true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Args returns the pandoc arguments for the manifest.
func (c *Compiler) Args(manifest []string) []string {
	args := []string{"--from", "html", "--output", c.output}
	if c.stylesheet != "" {
		args = append(args, "--css", c.stylesheet)
	}
	if c.metadata != "" {
		args = append(args, "--epub-metadata", c.metadata)
	}
	if c.font != "" {
		args = append(args, "--epub-embed-font", c.font)
	}
	if c.toc {
		args = append(args, "--toc")
	}
	args = append(args, "--")
	return append(args, manifest...)
}

// Compile runs pandoc and waits for it to finish.
// A non-zero exit is returned as a wrapped *exec.ExitError.
func (c *Compiler) Compile(ctx context.Context, manifest []string) error {
	if len(manifest) == 0 {
		return lyricbook.Errorf(lyricbook.EINVALID, "nothing to compile")
	}

	cmd := exec.CommandContext(ctx, c.executable, c.Args(manifest)...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return lyricbook.Errorf(lyricbook.ENOTFOUND, "%s not found in PATH", c.executable)
		}
		return fmt.Errorf("%s: %w", c.executable, err)
	}
	return nil
}
