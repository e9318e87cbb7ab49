package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"agingd/internal/imaging"
	"agingd/internal/registry"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// modelsDir creates a models directory holding the 100-channel checkpoint.
func modelsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, registry.Checkpoints[100]), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	return dir
}

func tensor(v float32) imaging.Tensor {
	return imaging.Tensor{Shape: [3]int{3, 1, 1}, Data: []float32{v, v, v}}
}

// fakeBackend records calls and returns canned artifacts.
type fakeBackend struct {
	loadErr    error
	genErr     error
	panicWith  any
	shortBy    int
	concurrent bool
	// block, when set, is received from before a generation call returns.
	block chan struct{}

	mu     sync.Mutex
	loaded []types.Checkpoint
	calls  []string
	args   []any
	active atomic.Int32
	peak   atomic.Int32
	closed bool
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) ConcurrentSafe() bool { return f.concurrent }

func (f *fakeBackend) Load(_ context.Context, cp types.Checkpoint) error {
	f.mu.Lock()
	f.loaded = append(f.loaded, cp)
	f.mu.Unlock()
	return f.loadErr
}

func (f *fakeBackend) enter(name string, args ...any) func() {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	f.mu.Unlock()
	n := f.active.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.block != nil {
		<-f.block
	}
	if f.panicWith != nil {
		f.active.Add(-1)
		panic(f.panicWith)
	}
	return func() { f.active.Add(-1) }
}

func (f *fakeBackend) frames(prefix string, n int) []string {
	n -= f.shortBy
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("%s_%02d.png", prefix, i))
	}
	return out
}

func (f *fakeBackend) AgeProgression(_ context.Context, t imaging.Tensor, age int, g sample.Gender) (string, error) {
	defer f.enter("age", t, age, g)()
	if f.genErr != nil {
		return "", f.genErr
	}
	return "aged.png", nil
}

func (f *fakeBackend) Morph(_ context.Context, a, b imaging.Tensor, ageA, ageB int, gA, gB sample.Gender, length int) ([]string, error) {
	defer f.enter("morph", a, b, ageA, ageB, gA, gB, length)()
	if f.genErr != nil {
		return nil, f.genErr
	}
	return f.frames("morph", length), nil
}

func (f *fakeBackend) Kids(_ context.Context, a, b imaging.Tensor, length int) ([]string, error) {
	defer f.enter("kids", a, b, length)()
	if f.genErr != nil {
		return nil, f.genErr
	}
	return f.frames("kid", length), nil
}

func (f *fakeBackend) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) callNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// loaded returns a ready Manager over fb.
func loadedManager(t *testing.T, fb *fakeBackend, mutate func(*Config)) *Manager {
	t.Helper()
	cfg := Config{Backend: fb, ModelsDir: modelsDir(t), ZChannels: 100}
	if mutate != nil {
		mutate(&cfg)
	}
	m := New(cfg)
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m
}

// waitFor polls cond until it holds or a second passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not reached")
		}
		time.Sleep(time.Millisecond)
	}
}
