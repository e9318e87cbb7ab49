// Package manager owns the process-wide generator handle and dispatches
// inference requests to it. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: Config and package defaults; New applies defaults.
//   - types.go: request variants (AgeProgression, Morph, Kids), Result, State.
//   - errors.go: error types and helpers (IsTooBusy, IsInferenceExecution, ...).
//   - load.go: one-time checkpoint resolution and backend load.
//   - admission.go: bounded queue and in-flight slots in front of the backend.
//   - dispatch.go: Dispatch, the single entry point for inference.
//   - status_report.go: Status reporting.
//   - events.go, eventpub_memory.go: lifecycle events.
//
// Backends:
//
//   - adapter_http.go: a model worker reached over HTTP; tensors travel as
//     msgpack, artifact paths come back as JSON.
//   - adapter_stub.go: refuses every call; used when no backend is configured.
//
// Calls into the backend are serialized unless the backend reports that it is
// safe for concurrent use.
package manager
