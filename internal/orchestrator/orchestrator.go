package orchestrator

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agingd/internal/imaging"
	"agingd/internal/manager"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// SampleResolver picks one dataset sample for a demographic key.
type SampleResolver interface {
	Resolve(ctx context.Context, key sample.DemographicKey) (sample.Record, error)
}

// TensorLoader turns a sample into a model tensor.
type TensorLoader interface {
	LoadAndTransform(ctx context.Context, rec sample.Record) (imaging.Tensor, error)
}

// Dispatcher executes one inference request.
type Dispatcher interface {
	Dispatch(ctx context.Context, req manager.InferenceRequest) (manager.Result, error)
}

// Config wires an Orchestrator.
type Config struct {
	Samples    SampleResolver
	Loader     TensorLoader
	Dispatcher Dispatcher
	Logger     zerolog.Logger
}

// Orchestrator coordinates the per-request pipeline.
type Orchestrator struct {
	samples    SampleResolver
	loader     TensorLoader
	dispatcher Dispatcher
	log        zerolog.Logger
}

func New(cfg Config) *Orchestrator {
	return &Orchestrator{
		samples:    cfg.Samples,
		loader:     cfg.Loader,
		dispatcher: cfg.Dispatcher,
		log:        cfg.Logger.With().Str("component", "orchestrator").Logger(),
	}
}

// Outcome is the result of one run together with the samples it used.
type Outcome struct {
	RequestID string
	Mode      manager.Mode
	// Sources are the original samples in subject order, for display
	// alongside the result.
	Sources   []sample.Record
	Artifacts []string
}

// Final returns the representative artifact: the only one for age
// progression, the last frame for sequences.
func (o Outcome) Final() string {
	if len(o.Artifacts) == 0 {
		return ""
	}
	return o.Artifacts[len(o.Artifacts)-1]
}

// Response renders o as the API response shape.
func (o Outcome) Response() types.RunResponse {
	originals := make([]string, 0, len(o.Sources))
	for _, s := range o.Sources {
		originals = append(originals, s.Path)
	}
	arts := o.Artifacts
	if arts == nil {
		arts = []string{}
	}
	return types.RunResponse{
		RequestID:      o.RequestID,
		Mode:           string(o.Mode),
		OriginalImages: originals,
		ResultImages:   arts,
		ResultImage:    o.Final(),
	}
}

// RunAgeProgression ages a sample matching in to in.Age.
func (o *Orchestrator) RunAgeProgression(ctx context.Context, in Subject) (Outcome, error) {
	key, err := in.Validate()
	if err != nil {
		return Outcome{}, err
	}
	id := uuid.NewString()
	log := o.log.With().Str("request_id", id).Str("mode", string(manager.ModeAgeProgression)).Logger()

	recs, err := o.resolve(ctx, key)
	if err != nil {
		return Outcome{}, err
	}
	ts, err := o.load(ctx, recs)
	if err != nil {
		return Outcome{}, err
	}
	log.Debug().Str("sample", recs[0].ID).Msg("dispatching")
	res, err := o.dispatcher.Dispatch(ctx, manager.AgeProgression{Tensor: ts[0], Age: key.Age, Gender: key.Gender})
	if err != nil {
		return Outcome{}, err
	}
	log.Info().Str("sample", recs[0].ID).Str("result", res.Final()).Msg("age progression done")
	return Outcome{RequestID: id, Mode: res.Mode, Sources: recs, Artifacts: res.Artifacts}, nil
}

// RunMorph interpolates between samples matching a and b over length frames.
// A zero length selects DefaultSequenceLength.
func (o *Orchestrator) RunMorph(ctx context.Context, a, b Subject, length int) (Outcome, error) {
	ka, kb, n, err := validatePair(a, b, length)
	if err != nil {
		return Outcome{}, err
	}
	return o.runPair(ctx, manager.ModeMorph, func(ts []imaging.Tensor) manager.InferenceRequest {
		return manager.Morph{
			TensorA: ts[0], TensorB: ts[1],
			AgeA: ka.Age, AgeB: kb.Age,
			GenderA: ka.Gender, GenderB: kb.Gender,
			Length: n,
		}
	}, ka, kb)
}

// RunKids synthesizes length offspring frames from samples matching a and b.
// A zero length selects DefaultSequenceLength.
func (o *Orchestrator) RunKids(ctx context.Context, a, b Subject, length int) (Outcome, error) {
	ka, kb, n, err := validatePair(a, b, length)
	if err != nil {
		return Outcome{}, err
	}
	return o.runPair(ctx, manager.ModeKids, func(ts []imaging.Tensor) manager.InferenceRequest {
		return manager.Kids{TensorA: ts[0], TensorB: ts[1], Length: n}
	}, ka, kb)
}

func validatePair(a, b Subject, length int) (sample.DemographicKey, sample.DemographicKey, int, error) {
	ka, err := validateNth(a, 1)
	if err != nil {
		return ka, ka, 0, err
	}
	kb, err := validateNth(b, 2)
	if err != nil {
		return ka, kb, 0, err
	}
	n, err := sequenceLength(length)
	return ka, kb, n, err
}

func (o *Orchestrator) runPair(ctx context.Context, mode manager.Mode, build func([]imaging.Tensor) manager.InferenceRequest, keys ...sample.DemographicKey) (Outcome, error) {
	id := uuid.NewString()
	log := o.log.With().Str("request_id", id).Str("mode", string(mode)).Logger()

	recs, err := o.resolve(ctx, keys...)
	if err != nil {
		return Outcome{}, err
	}
	ts, err := o.load(ctx, recs)
	if err != nil {
		return Outcome{}, err
	}
	log.Debug().Str("sample_1", recs[0].ID).Str("sample_2", recs[1].ID).Msg("dispatching")
	res, err := o.dispatcher.Dispatch(ctx, build(ts))
	if err != nil {
		return Outcome{}, err
	}
	log.Info().Int("frames", len(res.Artifacts)).Str("result", res.Final()).Msg(string(mode) + " done")
	return Outcome{RequestID: id, Mode: res.Mode, Sources: recs, Artifacts: res.Artifacts}, nil
}

// resolve selects a sample for every key before anything is loaded.
func (o *Orchestrator) resolve(ctx context.Context, keys ...sample.DemographicKey) ([]sample.Record, error) {
	recs := make([]sample.Record, 0, len(keys))
	for _, k := range keys {
		rec, err := o.samples.Resolve(ctx, k)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (o *Orchestrator) load(ctx context.Context, recs []sample.Record) ([]imaging.Tensor, error) {
	ts := make([]imaging.Tensor, 0, len(recs))
	for _, rec := range recs {
		t, err := o.loader.LoadAndTransform(ctx, rec)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	return ts, nil
}
