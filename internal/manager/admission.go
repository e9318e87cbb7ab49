package manager

import (
	"context"
	"time"
)

// beginGeneration reserves a queue slot and then an in-flight slot.
// Returns a release func to be deferred.
func (m *Manager) beginGeneration(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return func() {}, err
	}

	var expired <-chan time.Time
	if m.maxWait > 0 {
		timer := time.NewTimer(m.maxWait)
		defer timer.Stop()
		expired = timer.C
	}

	// The queue slot is not worth waiting for: a full queue is backpressure.
	select {
	case m.queueCh <- struct{}{}:
	default:
		return func() {}, tooBusyError{reason: "queue full"}
	}

	acquired := false
	defer func() {
		if !acquired {
			<-m.queueCh
		}
	}()
	select {
	case m.genCh <- struct{}{}:
		acquired = true
		return func() { <-m.genCh; <-m.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-expired:
		return func() {}, tooBusyError{reason: "timed out waiting for model"}
	}
}
