package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"agingd/internal/imaging"
	"agingd/internal/manager"
	"agingd/internal/orchestrator"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps a run error to the response status.
func statusFor(err error) int {
	switch {
	case orchestrator.IsInvalidInput(err):
		return http.StatusBadRequest
	case sample.IsNoMatchingSample(err):
		return http.StatusNotFound
	case imaging.IsDecodeError(err):
		return http.StatusUnprocessableEntity
	case manager.IsTooBusy(err):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case manager.IsInferenceExecution(err):
		return http.StatusBadGateway
	case manager.IsDependencyUnavailable(err):
		return http.StatusServiceUnavailable
	}
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
