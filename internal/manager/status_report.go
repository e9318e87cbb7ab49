package manager

import (
	"time"

	"agingd/pkg/types"
)

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp := types.StatusResponse{
		State:           string(m.state),
		Backend:         m.backend.Name(),
		QueueLen:        len(m.queueCh),
		Inflight:        len(m.genCh),
		MaxQueueDepth:   cap(m.queueCh),
		MaxInflight:     cap(m.genCh),
		DispatchesTotal: m.dispatches.Load(),
		FailuresTotal:   m.failures.Load(),
		LastError:       m.lastErr,
		UptimeSeconds:   int64(time.Since(m.startTime).Seconds()),
		ServerTimeUnix:  time.Now().Unix(),
	}
	if m.checkpoint != nil {
		cp := *m.checkpoint
		resp.Checkpoint = &cp
	}
	return resp
}
