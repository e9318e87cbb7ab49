package manager

import (
	"agingd/internal/imaging"
	"agingd/internal/sample"
)

// State represents lifecycle state of the model handle.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Mode names one of the three generation workflows.
type Mode string

const (
	ModeAgeProgression Mode = "age_progression"
	ModeMorph          Mode = "morphing"
	ModeKids           Mode = "kids"
)

// InferenceRequest is one of AgeProgression, Morph or Kids.
type InferenceRequest interface {
	Mode() Mode
	inferenceRequest()
}

// AgeProgression ages a single face to the target age.
type AgeProgression struct {
	Tensor imaging.Tensor
	Age    int
	Gender sample.Gender
}

// Morph interpolates between two identities and ages over Length frames.
type Morph struct {
	TensorA, TensorB imaging.Tensor
	AgeA, AgeB       int
	GenderA, GenderB sample.Gender
	Length           int
}

// Kids synthesizes Length offspring frames from two identities.
type Kids struct {
	TensorA, TensorB imaging.Tensor
	Length           int
}

func (AgeProgression) Mode() Mode { return ModeAgeProgression }
func (Morph) Mode() Mode          { return ModeMorph }
func (Kids) Mode() Mode           { return ModeKids }

func (AgeProgression) inferenceRequest() {}
func (Morph) inferenceRequest()          {}
func (Kids) inferenceRequest()           {}

// Result lists the artifacts produced for one request, in order.
type Result struct {
	Mode      Mode
	Artifacts []string
}

// Final returns the last artifact, the representative output of a sequence.
func (r Result) Final() string {
	if len(r.Artifacts) == 0 {
		return ""
	}
	return r.Artifacts[len(r.Artifacts)-1]
}
