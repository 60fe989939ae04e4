package lyricbook

import "context"

// Compiler bundles persisted lyric files into a single artifact.
type Compiler interface {
	// Compile builds the artifact from the manifest. The order of the
	// manifest determines the order of the table of contents.
	Compile(ctx context.Context, manifest []string) error
}
