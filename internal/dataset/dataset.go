// Package dataset provides read-only access to the sample image namespace.
//
// Sample files are named "{age}_{gender}_{race}_{rest}" and are looked up by
// name prefix. Two stores are available: a local directory and an S3 bucket
// prefix. Both are safe for concurrent use.
package dataset

import (
	"context"
	"io"
)

// Store is a read-only namespace of sample images.
type Store interface {
	// List returns the paths of all entries whose base name starts with
	// prefix, in lexical order. No match is not an error.
	List(ctx context.Context, prefix string) ([]string, error)
	// Open opens a path returned by List. A missing path yields an error
	// wrapping os.ErrNotExist.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
