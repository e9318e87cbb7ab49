// Package sample resolves demographic keys to dataset samples.
package sample

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"sync"

	"agingd/internal/dataset"
)

// Record is one dataset entry selected for a request.
type Record struct {
	// ID is the sample's base file name.
	ID  string
	Key DemographicKey
	// Path locates the sample in its dataset store.
	Path string
}

// NoMatchingSampleError is returned when no dataset entry is filed under Key.
type NoMatchingSampleError struct{ Key DemographicKey }

func (e NoMatchingSampleError) Error() string {
	return "no sample available for " + e.Key.String()
}

// Index resolves keys against a dataset store. Selection among several
// matches is uniformly random.
type Index struct {
	store dataset.Store

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Index.
type Option func(*Index)

// WithRand sets the random source used to pick among matches.
func WithRand(r *rand.Rand) Option {
	return func(ix *Index) { ix.rng = r }
}

// WithSeed seeds the selection source, for reproducible runs.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewIndex returns an Index over store.
func NewIndex(store dataset.Store, opts ...Option) *Index {
	ix := &Index{store: store}
	for _, o := range opts {
		o(ix)
	}
	if ix.rng == nil {
		ix.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return ix
}

// Candidates returns every record filed under key, in store order.
func (ix *Index) Candidates(ctx context.Context, key DemographicKey) ([]Record, error) {
	paths, err := ix.store.List(ctx, key.Prefix())
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(paths))
	for _, p := range paths {
		id := filepath.Base(p)
		k, err := ParseID(id)
		if err != nil || k != key {
			continue
		}
		out = append(out, Record{ID: id, Key: k, Path: p})
	}
	return out, nil
}

// Resolve picks one record filed under key.
func (ix *Index) Resolve(ctx context.Context, key DemographicKey) (Record, error) {
	recs, err := ix.Candidates(ctx, key)
	if err != nil {
		return Record{}, err
	}
	if len(recs) == 0 {
		return Record{}, NoMatchingSampleError{Key: key}
	}
	ix.mu.Lock()
	i := ix.rng.IntN(len(recs))
	ix.mu.Unlock()
	return recs[i], nil
}
