package manager

import (
	"errors"
	"net/http"

	"agingd/pkg/types"
)

// tooBusyError signals queue timeout/overflow for 429 mapping.
type tooBusyError struct{ reason string }

func (e tooBusyError) Error() string { return "too busy: " + e.reason }

// ErrTooBusy constructs a tooBusyError.
func ErrTooBusy(reason string) error { return tooBusyError{reason: reason} }

// IsTooBusy reports whether err indicates backpressure (return 429).
func IsTooBusy(err error) bool {
	var e tooBusyError
	return errors.As(err, &e)
}

// dependencyUnavailableError signals that the generator cannot serve
// (not loaded, no backend configured) so the HTTP layer can return 503.
type dependencyUnavailableError struct{ msg string }

func (e dependencyUnavailableError) Error() string { return e.msg }

// ErrDependencyUnavailable constructs a dependencyUnavailableError.
func ErrDependencyUnavailable(msg string) error { return dependencyUnavailableError{msg: msg} }

// IsDependencyUnavailable reports whether err indicates a missing/failed runtime dependency.
func IsDependencyUnavailable(err error) bool {
	var e dependencyUnavailableError
	return errors.As(err, &e)
}

// InferenceExecutionError wraps any failure of the backend call for a request.
type InferenceExecutionError struct {
	Mode Mode
	Err  error
}

func (e *InferenceExecutionError) Error() string {
	return "inference " + string(e.Mode) + " failed: " + e.Err.Error()
}

func (e *InferenceExecutionError) Unwrap() error { return e.Err }

// StatusCode maps backend failures to 502 Bad Gateway.
func (e *InferenceExecutionError) StatusCode() int { return http.StatusBadGateway }

// IsInferenceExecution reports whether err is an *InferenceExecutionError.
func IsInferenceExecution(err error) bool {
	var e *InferenceExecutionError
	return errors.As(err, &e)
}

// ModelLoadError reports that the generator could not be loaded at startup.
// It is not recoverable; the process must not serve requests.
type ModelLoadError struct {
	ZChannels  int
	Checkpoint types.Checkpoint
	Err        error
}

func (e *ModelLoadError) Error() string {
	if e.Checkpoint.Path != "" {
		return "load model " + e.Checkpoint.Path + ": " + e.Err.Error()
	}
	return "load model: " + e.Err.Error()
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// IsModelLoad reports whether err is a *ModelLoadError.
func IsModelLoad(err error) bool {
	var e *ModelLoadError
	return errors.As(err, &e)
}
