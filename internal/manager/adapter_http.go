package manager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vmihailenco/msgpack/v5"

	"agingd/internal/imaging"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

const msgpackContentType = "application/msgpack"

// HTTPBackendConfig configures a model worker reached over HTTP.
type HTTPBackendConfig struct {
	BaseURL string
	// Timeout bounds each call; zero leaves calls bounded only by the context.
	Timeout time.Duration
	// Concurrent declares that the worker accepts overlapping requests.
	Concurrent bool
}

// httpBackend implements Backend against a model worker exposing
// /v1/load, /v1/age-progression, /v1/morph and /v1/kids.
type httpBackend struct {
	client     *resty.Client
	concurrent bool
}

// NewHTTPBackend constructs a worker-backed Backend.
func NewHTTPBackend(cfg HTTPBackendConfig) Backend {
	cli := resty.New().SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}
	return &httpBackend{client: cli, concurrent: cfg.Concurrent}
}

func (b *httpBackend) Name() string         { return "http" }
func (b *httpBackend) ConcurrentSafe() bool { return b.concurrent }
func (b *httpBackend) Close() error         { return nil }

type loadRequest struct {
	Checkpoint string `json:"checkpoint"`
	ZChannels  int    `json:"z_channels"`
}

type ageProgressionPayload struct {
	Tensor imaging.Tensor `msgpack:"tensor"`
	Age    int            `msgpack:"age"`
	Gender int            `msgpack:"gender"`
}

type morphPayload struct {
	Tensors [2]imaging.Tensor `msgpack:"tensors"`
	Ages    [2]int            `msgpack:"ages"`
	Genders [2]int            `msgpack:"genders"`
	Length  int               `msgpack:"length"`
}

type kidsPayload struct {
	Tensors [2]imaging.Tensor `msgpack:"tensors"`
	Length  int               `msgpack:"length"`
}

// artifactsResponse is the worker's reply to every generation call.
type artifactsResponse struct {
	Artifacts []string `json:"artifacts"`
	Error     string   `json:"error,omitempty"`
}

func (b *httpBackend) Load(ctx context.Context, cp types.Checkpoint) error {
	res, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loadRequest{Checkpoint: cp.Path, ZChannels: cp.ZChannels}).
		Post("/v1/load")
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("model worker unreachable: %w", err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("model worker /v1/load: %s: %s", res.Status(), clip(res.String()))
	}
	return nil
}

func (b *httpBackend) AgeProgression(ctx context.Context, t imaging.Tensor, age int, gender sample.Gender) (string, error) {
	arts, err := b.generate(ctx, "/v1/age-progression", ageProgressionPayload{Tensor: t, Age: age, Gender: int(gender)})
	if err != nil {
		return "", err
	}
	if len(arts) != 1 {
		return "", fmt.Errorf("model worker returned %d artifacts, want 1", len(arts))
	}
	return arts[0], nil
}

func (b *httpBackend) Morph(ctx context.Context, a, c imaging.Tensor, ageA, ageB int, genderA, genderB sample.Gender, length int) ([]string, error) {
	return b.generate(ctx, "/v1/morph", morphPayload{
		Tensors: [2]imaging.Tensor{a, c},
		Ages:    [2]int{ageA, ageB},
		Genders: [2]int{int(genderA), int(genderB)},
		Length:  length,
	})
}

func (b *httpBackend) Kids(ctx context.Context, a, c imaging.Tensor, length int) ([]string, error) {
	return b.generate(ctx, "/v1/kids", kidsPayload{Tensors: [2]imaging.Tensor{a, c}, Length: length})
}

func (b *httpBackend) generate(ctx context.Context, path string, payload any) ([]string, error) {
	body, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", path, err)
	}
	res, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", msgpackContentType).
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	var out artifactsResponse
	if jerr := json.Unmarshal(res.Body(), &out); jerr != nil && res.IsSuccess() {
		return nil, fmt.Errorf("model worker %s: invalid response: %w", path, jerr)
	}
	if !res.IsSuccess() {
		msg := out.Error
		if msg == "" {
			msg = clip(res.String())
		}
		return nil, errors.New("model worker " + path + ": " + res.Status() + ": " + msg)
	}
	if out.Error != "" {
		return nil, errors.New("model worker " + path + ": " + out.Error)
	}
	return out.Artifacts, nil
}

func clip(s string) string {
	if len(s) > 4096 {
		return s[:4096]
	}
	return s
}
