// Package fs provides file-based storage for pruned lyric documents.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/lyricbook"
)

// DefaultDir is the output directory used by the CLI.
const DefaultDir = "lyrics"

// Ensure Store implements lyricbook.LyricStore at compile time.
var _ lyricbook.LyricStore = (*Store)(nil)

// Store writes lyric documents as individual files in one directory.
//
// Save is exclusive per file name: data is written to a temporary file and
// hard-linked into place, so a file either appears complete or not at all,
// and two writers racing for the same name cannot both succeed.
type Store struct {
	dir string
}

// NewStore creates a new Store that writes to dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Init creates the output directory and its parents.
func (s *Store) Init() error {
	return os.MkdirAll(s.dir, 0755)
}

// Path returns the path of name inside the output directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether name has already been written.
func (s *Store) Exists(name string) (bool, error) {
	_, err := os.Stat(s.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Save writes data under name. Returns ECONFLICT if name already exists.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return lyricbook.Errorf(lyricbook.EINVALID, "invalid file name %q", name)
	}

	tmp, err := os.CreateTemp(s.dir, ".lyric-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	if err := os.Link(tmp.Name(), s.Path(name)); err != nil {
		if errors.Is(err, os.ErrExist) {
			return lyricbook.Errorf(lyricbook.ECONFLICT, "%s already exists", s.Path(name))
		}
		return err
	}
	return nil
}
