package manager

import (
	"context"
	"fmt"
	"time"
)

// Dispatch runs req against the loaded generator with exactly one backend
// call. Backend failures, including a wrong number of artifacts, are
// returned as *InferenceExecutionError. Admission failures (busy, canceled),
// a context that ends during the call, and an unloaded model are returned
// as-is and do not count as failures.
func (m *Manager) Dispatch(ctx context.Context, req InferenceRequest) (Result, error) {
	mode := req.Mode()
	if !m.Ready() {
		return Result{}, ErrDependencyUnavailable("model not loaded")
	}
	release, err := m.beginGeneration(ctx)
	if err != nil {
		return Result{}, err
	}
	defer release()

	m.dispatches.Add(1)
	m.events.Publish(Event{Name: "dispatch_start", Mode: mode})
	start := time.Now()
	arts, err := m.call(ctx, req)
	dur := time.Since(start)
	if err != nil && ctx.Err() != nil {
		// The caller gave up; the model is not at fault.
		err = ctx.Err()
		m.events.Publish(Event{Name: "dispatch_end", Mode: mode, Fields: map[string]any{"duration": dur, "error": err.Error()}})
		m.log.Debug().Err(err).Str("mode", string(mode)).Dur("duration", dur).Msg("dispatch abandoned")
		return Result{}, err
	}
	if err != nil {
		m.failures.Add(1)
		err = &InferenceExecutionError{Mode: mode, Err: err}
		m.setError(err)
		m.events.Publish(Event{Name: "dispatch_end", Mode: mode, Fields: map[string]any{"duration": dur, "error": err.Error()}})
		m.log.Warn().Err(err).Str("mode", string(mode)).Dur("duration", dur).Msg("dispatch failed")
		return Result{}, err
	}
	m.events.Publish(Event{Name: "dispatch_end", Mode: mode, Fields: map[string]any{"duration": dur, "artifacts": len(arts)}})
	m.log.Debug().Str("mode", string(mode)).Int("artifacts", len(arts)).Dur("duration", dur).Msg("dispatch done")
	return Result{Mode: mode, Artifacts: arts}, nil
}

// call invokes the backend operation for req and checks the artifact count.
func (m *Manager) call(ctx context.Context, req InferenceRequest) (arts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			arts, err = nil, fmt.Errorf("backend panic: %v", r)
		}
	}()
	want := 1
	switch r := req.(type) {
	case AgeProgression:
		var art string
		art, err = m.backend.AgeProgression(ctx, r.Tensor, r.Age, r.Gender)
		if err == nil {
			arts = []string{art}
		}
	case Morph:
		want = r.Length
		arts, err = m.backend.Morph(ctx, r.TensorA, r.TensorB, r.AgeA, r.AgeB, r.GenderA, r.GenderB, r.Length)
	case Kids:
		want = r.Length
		arts, err = m.backend.Kids(ctx, r.TensorA, r.TensorB, r.Length)
	default:
		return nil, fmt.Errorf("unsupported request %T", req)
	}
	if err != nil {
		return nil, err
	}
	if len(arts) != want {
		return nil, fmt.Errorf("backend returned %d artifacts, want %d", len(arts), want)
	}
	return arts, nil
}
