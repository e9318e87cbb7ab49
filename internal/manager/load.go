package manager

import (
	"context"

	"agingd/internal/registry"
)

// Load resolves the configured checkpoint and loads it into the backend.
// Any failure is returned as *ModelLoadError and leaves the manager in the
// error state; the process must not serve requests in that case.
func (m *Manager) Load(ctx context.Context) error {
	cp, err := registry.Resolve(m.modelsDir, m.zChannels)
	if err != nil {
		return m.loadFailed(&ModelLoadError{ZChannels: m.zChannels, Checkpoint: cp, Err: err})
	}
	m.log.Info().Str("checkpoint", cp.Path).Int("z_channels", cp.ZChannels).Str("backend", m.backend.Name()).Msg("loading model")
	if err := m.backend.Load(ctx, cp); err != nil {
		return m.loadFailed(&ModelLoadError{ZChannels: m.zChannels, Checkpoint: cp, Err: err})
	}
	m.mu.Lock()
	m.state = StateReady
	m.checkpoint = &cp
	m.lastErr = ""
	m.mu.Unlock()
	m.events.Publish(Event{Name: "model_loaded", Fields: map[string]any{"checkpoint": cp.Path, "z_channels": cp.ZChannels}})
	m.log.Info().Str("checkpoint", cp.Name).Msg("model ready")
	return nil
}

func (m *Manager) loadFailed(err *ModelLoadError) error {
	m.mu.Lock()
	m.state = StateError
	m.lastErr = err.Error()
	m.mu.Unlock()
	m.log.Error().Err(err).Msg("model load failed")
	return err
}
