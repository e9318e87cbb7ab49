package dataset

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"agingd/internal/common/fsutil"
)

// Local implements Store on top of a directory of image files.
type Local struct {
	root string
}

// NewLocal opens the dataset directory dir. The directory must exist.
func NewLocal(dir string) (*Local, error) {
	abs, err := fsutil.AbsDir(dir)
	if err != nil {
		return nil, err
	}
	return &Local{root: abs}, nil
}

// Root returns the absolute dataset directory.
func (l *Local) Root() string { return l.root }

// List returns absolute paths of the files directly under the root whose name
// starts with prefix.
func (l *Local) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			out = append(out, filepath.Join(l.root, e.Name()))
		}
	}
	return out, nil
}

// Open opens path. Relative paths are resolved against the root.
func (l *Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	return os.Open(path)
}

var _ Store = (*Local)(nil)
