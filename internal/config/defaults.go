package config

import "path/filepath"

// Defaults applied when the corresponding Config fields are unset.
const (
	DefaultAddr          = ":8080"
	DefaultZChannels     = 100
	DefaultBackend       = "http"
	DefaultBackendURL    = "http://127.0.0.1:9090"
	DefaultMaxQueueDepth = 32
	DefaultImageSize     = 128
	DefaultMaxBodyBytes  = 1 << 20
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
)

var (
	DefaultDatasetDir = filepath.Join(".", "data", "UTKFace", "unlabeled")
	DefaultModelsDir  = filepath.Join(".", "trained_models")
)

// Defaults returns a copy of cfg with every zero field replaced by its default.
func Defaults(cfg Config) Config {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DatasetDir == "" && cfg.DatasetBucket == "" {
		cfg.DatasetDir = DefaultDatasetDir
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = DefaultModelsDir
	}
	if cfg.ZChannels == 0 {
		cfg.ZChannels = DefaultZChannels
	}
	if cfg.Backend == "" {
		cfg.Backend = DefaultBackend
	}
	if cfg.Backend == "http" && cfg.BackendURL == "" {
		cfg.BackendURL = DefaultBackendURL
	}
	if cfg.MaxQueueDepth <= 0 {
		cfg.MaxQueueDepth = DefaultMaxQueueDepth
	}
	if cfg.ImageSize <= 0 {
		cfg.ImageSize = DefaultImageSize
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	return cfg
}
