package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"agingd/internal/config"
	"agingd/internal/dataset"
	"agingd/internal/httpapi"
	"agingd/internal/imaging"
	"agingd/internal/manager"
	"agingd/internal/orchestrator"
	"agingd/internal/registry"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// Seams replaced in tests.
var (
	openStore  = defaultOpenStore
	newBackend = defaultNewBackend
)

func defaultOpenStore(ctx context.Context, cfg config.Config) (dataset.Store, error) {
	if cfg.DatasetBucket == "" {
		return dataset.NewLocal(cfg.DatasetDir)
	}
	client, err := dataset.NewS3Client(ctx, dataset.S3Options{
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return dataset.NewS3(client, cfg.DatasetBucket, cfg.DatasetPrefix), nil
}

func defaultNewBackend(cfg config.Config) (manager.Backend, error) {
	switch cfg.Backend {
	case "http":
		return manager.NewHTTPBackend(manager.HTTPBackendConfig{
			BaseURL:    cfg.BackendURL,
			Timeout:    time.Duration(cfg.BackendTimeoutSec) * time.Second,
			Concurrent: cfg.BackendConcurrent,
		}), nil
	case "none":
		return manager.NewUnavailableBackend("backend disabled by configuration"), nil
	}
	return nil, fmt.Errorf("unknown backend %q (want http or none)", cfg.Backend)
}

// app holds the wired components of one process and serves the HTTP API.
type app struct {
	*orchestrator.Orchestrator
	mgr       *manager.Manager
	modelsDir string
}

var _ httpapi.Service = (*app)(nil)

// buildApp wires the dataset, index, loader and manager, and loads the model.
// A failed load is returned as *manager.ModelLoadError.
func buildApp(ctx context.Context, cfg config.Config, log zerolog.Logger, events manager.EventPublisher) (*app, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	backend, err := newBackend(cfg)
	if err != nil {
		return nil, err
	}
	mgr := manager.New(manager.Config{
		Backend:       backend,
		ModelsDir:     cfg.ModelsDir,
		ZChannels:     cfg.ZChannels,
		MaxQueueDepth: cfg.MaxQueueDepth,
		MaxWait:       time.Duration(cfg.MaxWaitMS) * time.Millisecond,
		Events:        events,
		Logger:        log,
	})
	if err := mgr.Load(ctx); err != nil {
		_ = mgr.Close()
		return nil, err
	}

	var opts []sample.Option
	if cfg.SampleSeed != 0 {
		opts = append(opts, sample.WithSeed(uint64(cfg.SampleSeed)))
	}
	orch := orchestrator.New(orchestrator.Config{
		Samples:    sample.NewIndex(store, opts...),
		Loader:     imaging.NewLoader(store, cfg.ImageSize),
		Dispatcher: mgr,
		Logger:     log,
	})
	return &app{Orchestrator: orch, mgr: mgr, modelsDir: cfg.ModelsDir}, nil
}

func (a *app) Checkpoints() (types.CheckpointsResponse, error) {
	cps, err := registry.List(a.modelsDir)
	if err != nil {
		return types.CheckpointsResponse{}, err
	}
	resp := types.CheckpointsResponse{Checkpoints: cps}
	if cp, ok := a.mgr.Checkpoint(); ok {
		resp.Active = cp.ZChannels
	}
	return resp, nil
}

func (a *app) Status() types.StatusResponse { return a.mgr.Status() }
func (a *app) Ready() bool                  { return a.mgr.Ready() }
func (a *app) Close() error                 { return a.mgr.Close() }
