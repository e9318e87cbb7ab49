package manager

import (
	"context"

	"agingd/internal/imaging"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// unavailableBackend satisfies Backend but refuses to load or run anything.
// It backs the "none" backend kind so a misconfigured process fails fast at
// startup instead of serving mocked output.
type unavailableBackend struct{ reason string }

// NewUnavailableBackend returns a Backend whose every call fails with reason.
func NewUnavailableBackend(reason string) Backend {
	if reason == "" {
		reason = "no model backend configured"
	}
	return unavailableBackend{reason: reason}
}

func (b unavailableBackend) Name() string { return "none" }

func (b unavailableBackend) Load(context.Context, types.Checkpoint) error {
	return ErrDependencyUnavailable(b.reason)
}

func (b unavailableBackend) AgeProgression(context.Context, imaging.Tensor, int, sample.Gender) (string, error) {
	return "", ErrDependencyUnavailable(b.reason)
}

func (b unavailableBackend) Morph(context.Context, imaging.Tensor, imaging.Tensor, int, int, sample.Gender, sample.Gender, int) ([]string, error) {
	return nil, ErrDependencyUnavailable(b.reason)
}

func (b unavailableBackend) Kids(context.Context, imaging.Tensor, imaging.Tensor, int) ([]string, error) {
	return nil, ErrDependencyUnavailable(b.reason)
}

func (b unavailableBackend) Close() error { return nil }
