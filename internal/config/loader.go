package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by Defaults.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr" env:"AGINGD_ADDR"`

	// Dataset: a local directory, or an S3 bucket when DatasetBucket is set.
	DatasetDir      string `json:"dataset_dir" yaml:"dataset_dir" toml:"dataset_dir" env:"AGINGD_DATASET_DIR"`
	DatasetBucket   string `json:"dataset_bucket" yaml:"dataset_bucket" toml:"dataset_bucket" env:"AGINGD_DATASET_BUCKET"`
	DatasetPrefix   string `json:"dataset_prefix" yaml:"dataset_prefix" toml:"dataset_prefix" env:"AGINGD_DATASET_PREFIX"`
	S3Endpoint      string `json:"s3_endpoint" yaml:"s3_endpoint" toml:"s3_endpoint" env:"AGINGD_S3_ENDPOINT"`
	S3Region        string `json:"s3_region" yaml:"s3_region" toml:"s3_region" env:"AGINGD_S3_REGION"`
	S3AccessKeyID   string `json:"s3_access_key_id" yaml:"s3_access_key_id" toml:"s3_access_key_id" env:"AWS_ACCESS_KEY_ID"`
	S3SecretKey     string `json:"s3_secret_access_key" yaml:"s3_secret_access_key" toml:"s3_secret_access_key" env:"AWS_SECRET_ACCESS_KEY"`

	// Model checkpoint selection.
	ModelsDir string `json:"models_dir" yaml:"models_dir" toml:"models_dir" env:"AGINGD_MODELS_DIR"`
	ZChannels int    `json:"z_channels" yaml:"z_channels" toml:"z_channels" env:"AGINGD_Z_CHANNELS"`

	// Model backend.
	Backend           string `json:"backend" yaml:"backend" toml:"backend" env:"AGINGD_BACKEND"`
	BackendURL        string `json:"backend_url" yaml:"backend_url" toml:"backend_url" env:"AGINGD_BACKEND_URL"`
	BackendConcurrent bool   `json:"backend_concurrent" yaml:"backend_concurrent" toml:"backend_concurrent" env:"AGINGD_BACKEND_CONCURRENT"`
	BackendTimeoutSec int    `json:"backend_timeout_seconds" yaml:"backend_timeout_seconds" toml:"backend_timeout_seconds" env:"AGINGD_BACKEND_TIMEOUT_SECONDS"`

	// Admission.
	MaxQueueDepth int `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth" env:"AGINGD_MAX_QUEUE_DEPTH"`
	MaxWaitMS     int `json:"max_wait_ms" yaml:"max_wait_ms" toml:"max_wait_ms" env:"AGINGD_MAX_WAIT_MS"`

	// Transform and sampling.
	ImageSize  int   `json:"image_size" yaml:"image_size" toml:"image_size" env:"AGINGD_IMAGE_SIZE"`
	SampleSeed int64 `json:"sample_seed" yaml:"sample_seed" toml:"sample_seed" env:"AGINGD_SAMPLE_SEED"`

	// HTTP.
	MaxBodyBytes  int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"AGINGD_MAX_BODY_BYTES"`
	RunTimeoutSec int      `json:"run_timeout_seconds" yaml:"run_timeout_seconds" toml:"run_timeout_seconds" env:"AGINGD_RUN_TIMEOUT_SECONDS"`
	CORSEnabled   bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"AGINGD_CORS_ENABLED"`
	CORSOrigins   []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"AGINGD_CORS_ORIGINS" envSeparator:","`

	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" env:"AGINGD_LOG_LEVEL"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" env:"AGINGD_LOG_FORMAT"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overlays AGINGD_* environment variables onto cfg.
// Variables that are unset leave the corresponding field untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
