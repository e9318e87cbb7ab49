package manager

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"agingd/pkg/types"
)

// Manager owns the loaded generator and serializes access to it.
type Manager struct {
	mu         sync.RWMutex
	state      State
	checkpoint *types.Checkpoint
	lastErr    string

	backend   Backend
	modelsDir string
	zChannels int

	// queueCh bounds waiting plus running requests; genCh bounds running.
	queueCh chan struct{}
	genCh   chan struct{}
	maxWait time.Duration

	events    EventPublisher
	log       zerolog.Logger
	startTime time.Time

	dispatches atomic.Uint64
	failures   atomic.Uint64
}

// Ready reports whether the generator is loaded and accepting requests.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateReady
}

// Checkpoint returns the loaded checkpoint, if any.
func (m *Manager) Checkpoint() (types.Checkpoint, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.checkpoint == nil {
		return types.Checkpoint{}, false
	}
	return *m.checkpoint, true
}

// BackendName returns the configured backend kind.
func (m *Manager) BackendName() string { return m.backend.Name() }

// Close releases the backend. The manager is not ready afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.state = StateLoading
	m.checkpoint = nil
	m.mu.Unlock()
	return m.backend.Close()
}

func (m *Manager) setError(err error) {
	m.mu.Lock()
	m.lastErr = err.Error()
	m.mu.Unlock()
}
