package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lyricbook"
)

// Ensure LoggingCompiler implements lyricbook.Compiler.
var _ lyricbook.Compiler = (*LoggingCompiler)(nil)

// LoggingCompiler wraps a Compiler with debug logging.
type LoggingCompiler struct {
	next   lyricbook.Compiler
	logger *slog.Logger
}

// NewLoggingCompiler creates a new LoggingCompiler.
func NewLoggingCompiler(next lyricbook.Compiler, logger *slog.Logger) *LoggingCompiler {
	return &LoggingCompiler{next: next, logger: logger}
}

// Compile delegates to the wrapped compiler and logs the manifest size.
func (c *LoggingCompiler) Compile(ctx context.Context, manifest []string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("compile",
			"files", len(manifest),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Compile(ctx, manifest)
}
