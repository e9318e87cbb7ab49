package manager

import (
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultZChannels     = 100
)

// Config encapsulates all tunables for Manager construction.
type Config struct {
	// Backend executes the model. Nil selects the unavailable backend.
	Backend   Backend
	ModelsDir string
	ZChannels int
	// MaxQueueDepth bounds requests waiting for or holding a slot.
	MaxQueueDepth int
	// MaxWait bounds how long a request waits for admission. Zero waits
	// until the request context ends.
	MaxWait time.Duration
	Events  EventPublisher
	Logger  zerolog.Logger
}

// New constructs a Manager in the loading state. Call Load before Dispatch.
func New(cfg Config) *Manager {
	m := &Manager{
		state:     StateLoading,
		backend:   cfg.Backend,
		modelsDir: cfg.ModelsDir,
		zChannels: cfg.ZChannels,
		maxWait:   cfg.MaxWait,
		events:    cfg.Events,
		log:       cfg.Logger.With().Str("component", "manager").Logger(),
		startTime: time.Now(),
	}
	if m.backend == nil {
		m.backend = NewUnavailableBackend("")
	}
	if m.zChannels <= 0 {
		m.zChannels = defaultZChannels
	}
	if m.events == nil {
		m.events = noopPublisher{}
	}
	depth := cfg.MaxQueueDepth
	if depth <= 0 {
		depth = defaultMaxQueueDepth
	}
	inflight := 1
	if concurrentSafe(m.backend) {
		inflight = depth
	}
	m.queueCh = make(chan struct{}, depth)
	m.genCh = make(chan struct{}, inflight)
	return m
}
