package lyricbook

import "context"

// LyricStore persists pruned documents as individual files.
type LyricStore interface {
	// Init creates the output location if it does not exist.
	Init() error

	// Path returns the path a file name is stored under.
	Path(name string) string

	// Exists reports whether a file with the name has already been written.
	Exists(name string) (bool, error)

	// Save writes data under the name. The write is exclusive: if the name
	// already exists Save returns ECONFLICT and leaves the file unchanged.
	Save(ctx context.Context, name string, data []byte) error
}
