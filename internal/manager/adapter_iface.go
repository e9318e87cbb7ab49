package manager

import (
	"context"

	"agingd/internal/imaging"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// Backend abstracts the generator runtime used by the Manager. Each method
// maps to one model operation and returns artifact references.
type Backend interface {
	// Name identifies the backend kind in status output.
	Name() string
	// Load prepares the generator from a checkpoint. Called once at startup.
	Load(ctx context.Context, cp types.Checkpoint) error
	// AgeProgression returns the artifact of t aged to age.
	AgeProgression(ctx context.Context, t imaging.Tensor, age int, gender sample.Gender) (string, error)
	// Morph returns length ordered frames interpolating a into b.
	Morph(ctx context.Context, a, b imaging.Tensor, ageA, ageB int, genderA, genderB sample.Gender, length int) ([]string, error)
	// Kids returns length ordered offspring frames of a and b.
	Kids(ctx context.Context, a, b imaging.Tensor, length int) ([]string, error)
	// Close releases resources associated with the backend.
	Close() error
}

// ConcurrentBackend is implemented by backends that document whether they
// can serve overlapping calls. Backends without it are called one at a time.
type ConcurrentBackend interface {
	ConcurrentSafe() bool
}

func concurrentSafe(b Backend) bool {
	cb, ok := b.(ConcurrentBackend)
	return ok && cb.ConcurrentSafe()
}
