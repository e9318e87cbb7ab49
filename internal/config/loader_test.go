package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\ndataset_dir: /data\nmodels_dir: /m\nz_channels: 100\nbackend_url: http://w:1\nmax_queue_depth: 4\ncors_origins: [a, b]\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":9999" || cfg.DatasetDir != "/data" || cfg.ModelsDir != "/m" || cfg.ZChannels != 100 || cfg.BackendURL != "http://w:1" || cfg.MaxQueueDepth != 4 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "b" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","dataset_bucket":"faces","dataset_prefix":"utk","z_channels":100,"backend":"none","sample_seed":7}`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":7070" || cfg.DatasetBucket != "faces" || cfg.DatasetPrefix != "utk" || cfg.Backend != "none" || cfg.SampleSeed != 7 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nmodels_dir=\"/x\"\nz_channels=100\nbackend_concurrent=true\nmax_wait_ms=250\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":8081" || cfg.ModelsDir != "/x" || !cfg.BackendConcurrent || cfg.MaxWaitMS != 250 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil { t.Fatalf("expected error on empty path") }
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil { t.Fatalf("expected unsupported extension error") }
}

func TestApplyEnvOverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("AGINGD_ADDR", ":6060")
	t.Setenv("AGINGD_Z_CHANNELS", "100")
	t.Setenv("AGINGD_CORS_ORIGINS", "http://a,http://b")
	cfg := Config{Addr: ":1", ModelsDir: "/keep"}
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if cfg.Addr != ":6060" || cfg.ZChannels != 100 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.ModelsDir != "/keep" {
		t.Fatalf("unset env clobbered field: %q", cfg.ModelsDir)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "http://a" {
		t.Fatalf("origins=%v", cfg.CORSOrigins)
	}
}

func TestApplyEnvBadInt(t *testing.T) {
	t.Setenv("AGINGD_Z_CHANNELS", "lots")
	var cfg Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults(Config{})
	if cfg.Addr != DefaultAddr || cfg.ZChannels != DefaultZChannels || cfg.ImageSize != DefaultImageSize {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DatasetDir != DefaultDatasetDir || cfg.BackendURL != DefaultBackendURL {
		t.Fatalf("unexpected dataset/backend defaults: %+v", cfg)
	}
	// a bucket replaces the local dataset dir default
	cfg = Defaults(Config{DatasetBucket: "faces", Backend: "none"})
	if cfg.DatasetDir != "" {
		t.Fatalf("dataset dir should stay empty with a bucket: %q", cfg.DatasetDir)
	}
	if cfg.BackendURL != "" {
		t.Fatalf("backend url default applied to non-http backend: %q", cfg.BackendURL)
	}
}
