package types

// AgeProgressionRequest is the payload for POST /age_progression.
// Fields are pointers so that an absent field can be told apart from zero.
type AgeProgressionRequest struct {
	// Age of the sample to select and the age conditioning the model.
	// example: 25
	Age *int `json:"age" schema:"age" example:"25"`
	// Gender code: 0=male, 1=female.
	// example: 0
	Gender *int `json:"gender" schema:"gender" example:"0"`
	// Race code: 0=white, 1=black, 2=asian, 3=indian, 4=other.
	// example: 0
	Race *int `json:"race" schema:"race" example:"0"`
}

// PairRequest is the payload for POST /morphing and POST /kids.
type PairRequest struct {
	// example: 10
	Age1 *int `json:"age_1" schema:"age_1" example:"10"`
	// example: 1
	Gender1 *int `json:"gender_1" schema:"gender_1" example:"1"`
	// example: 2
	Race1 *int `json:"race_1" schema:"race_1" example:"2"`
	// example: 60
	Age2 *int `json:"age_2" schema:"age_2" example:"60"`
	// example: 0
	Gender2 *int `json:"gender_2" schema:"gender_2" example:"0"`
	// example: 1
	Race2 *int `json:"race_2" schema:"race_2" example:"1"`
	// Number of frames to produce. Omitted means 10.
	// example: 10
	Length *int `json:"length,omitempty" schema:"length" example:"10"`
}

// RunResponse is returned by the three generation endpoints.
type RunResponse struct {
	// example: 6f1c8a0e-4a52-4f5e-9d1b-1f1d0e7c2a10
	RequestID string `json:"request_id" example:"6f1c8a0e-4a52-4f5e-9d1b-1f1d0e7c2a10"`
	// One of age_progression, morphing, kids.
	// example: age_progression
	Mode string `json:"mode" example:"age_progression"`
	// Dataset samples the result was generated from, in subject order.
	OriginalImages []string `json:"original_images"`
	// Every artifact produced by the model, in order.
	ResultImages []string `json:"result_images"`
	// Representative artifact: the single output, or the final frame of a sequence.
	ResultImage string `json:"result_image"`
}

// CheckpointsResponse wraps the checkpoints returned by GET /checkpoints.
type CheckpointsResponse struct {
	Checkpoints []Checkpoint `json:"checkpoints"`
	// Z channel count of the loaded checkpoint, 0 when nothing is loaded.
	// example: 100
	Active int `json:"active" example:"100"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: no sample available for age=25 gender=0 race=4
	Error string `json:"error" example:"no sample available for age=25 gender=0 race=4"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Model handle state (loading, ready, error).
	// example: ready
	State string `json:"state" example:"ready"`
	// Backend kind serving inference.
	// example: http
	Backend string `json:"backend" example:"http"`
	// Loaded checkpoint, if any.
	Checkpoint *Checkpoint `json:"checkpoint,omitempty"`
	// Requests waiting for or holding an execution slot.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Requests currently executing against the model.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
	// example: 32
	MaxQueueDepth int `json:"max_queue_depth" example:"32"`
	// Maximum concurrent executions allowed against the model.
	// example: 1
	MaxInflight int `json:"max_inflight" example:"1"`
	// example: 12
	DispatchesTotal uint64 `json:"dispatches_total" example:"12"`
	// example: 1
	FailuresTotal uint64 `json:"failures_total" example:"1"`
	// Last error observed by the dispatcher (if any).
	LastError string `json:"last_error,omitempty"`
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
