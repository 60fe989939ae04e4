package mock

import (
	"context"

	"github.com/fwojciec/lyricbook"
)

var _ lyricbook.Compiler = (*Compiler)(nil)

// Compiler is a mock implementation of lyricbook.Compiler.
type Compiler struct {
	CompileFn func(ctx context.Context, manifest []string) error
}

func (c *Compiler) Compile(ctx context.Context, manifest []string) error {
	return c.CompileFn(ctx, manifest)
}
