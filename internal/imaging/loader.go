// Package imaging loads dataset samples and converts them into the tensor
// layout the generator expects.
package imaging

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"agingd/internal/dataset"
	"agingd/internal/sample"
)

// DecodeError reports a sample that is missing or whose bytes could not be
// decoded. Other store failures are returned as plain errors.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return "decode image " + e.Path + ": " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecodeError reports whether err is a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// Loader reads samples from a dataset store and transforms them.
type Loader struct {
	store dataset.Store
	size  int
}

// NewLoader returns a Loader producing size×size tensors.
func NewLoader(store dataset.Store, size int) *Loader {
	if size <= 0 {
		size = DefaultSize
	}
	return &Loader{store: store, size: size}
}

// Size returns the edge length of produced tensors.
func (l *Loader) Size() int { return l.size }

// LoadAndTransform reads rec's image and returns its tensor.
func (l *Loader) LoadAndTransform(ctx context.Context, rec sample.Record) (Tensor, error) {
	rc, err := l.store.Open(ctx, rec.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Tensor{}, &DecodeError{Path: rec.Path, Err: err}
		}
		return Tensor{}, fmt.Errorf("open sample %s: %w", rec.Path, err)
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return Tensor{}, &DecodeError{Path: rec.Path, Err: err}
	}
	return Transform(img, l.size), nil
}
