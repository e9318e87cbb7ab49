package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"agingd/internal/dataset"
	"agingd/internal/httpapi"
	"agingd/internal/imaging"
	"agingd/internal/manager"
	"agingd/internal/orchestrator"
	"agingd/internal/registry"
	"agingd/internal/sample"
	"agingd/pkg/types"
)

// createDataset writes small JPEG faces named after the UTKFace convention.
func createDataset(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, n := range names {
		img := image.NewRGBA(image.Rect(0, 0, 48, 48))
		for y := 0; y < 48; y++ {
			for x := 0; x < 48; x++ {
				img.Set(x, y, color.RGBA{R: uint8(30 * i), G: uint8(5 * x), B: uint8(5 * y), A: 255})
			}
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, nil); err != nil {
			t.Fatalf("encode %s: %v", n, err)
		}
		if err := os.WriteFile(filepath.Join(dir, n), buf.Bytes(), 0o644); err != nil {
			t.Fatalf("write sample %s: %v", n, err)
		}
	}
	return dir
}

// createModelsDir returns a models directory holding the default checkpoint.
func createModelsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, registry.Checkpoints[100]), 0o755); err != nil {
		t.Fatalf("mkdir checkpoint: %v", err)
	}
	return dir
}

type wireTensor struct {
	Shape [3]int    `msgpack:"shape"`
	Data  []float32 `msgpack:"data"`
}

type workerRequest struct {
	Tensor  wireTensor    `msgpack:"tensor"`
	Tensors [2]wireTensor `msgpack:"tensors"`
	Age     int           `msgpack:"age"`
	Ages    [2]int        `msgpack:"ages"`
	Gender  int           `msgpack:"gender"`
	Genders [2]int        `msgpack:"genders"`
	Length  int           `msgpack:"length"`
}

// modelWorker is an in-process stand-in for the generator worker.
type modelWorker struct {
	srv   *httptest.Server
	delay time.Duration
	fail  atomic.Bool

	mu     sync.Mutex
	loads  int
	paths  []string
	bodies []workerRequest
}

func newModelWorker(t *testing.T) *modelWorker {
	t.Helper()
	w := &modelWorker{}
	w.srv = httptest.NewServer(http.HandlerFunc(w.handle))
	t.Cleanup(w.srv.Close)
	return w
}

func (w *modelWorker) handle(rw http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/v1/load" {
		w.mu.Lock()
		w.loads++
		w.mu.Unlock()
		rw.WriteHeader(http.StatusOK)
		return
	}
	var req workerRequest
	if err := msgpack.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(rw, `{"error":"bad payload"}`, http.StatusBadRequest)
		return
	}
	w.mu.Lock()
	w.paths = append(w.paths, r.URL.Path)
	w.bodies = append(w.bodies, req)
	w.mu.Unlock()
	if w.delay > 0 {
		time.Sleep(w.delay)
	}
	rw.Header().Set("Content-Type", "application/json")
	if w.fail.Load() {
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"error":"generator crashed"}`))
		return
	}
	n := 1
	if r.URL.Path != "/v1/age-progression" {
		n = req.Length
	}
	arts := make([]string, n)
	for i := range arts {
		arts[i] = fmt.Sprintf("results%s/%02d.png", r.URL.Path, i)
	}
	_ = json.NewEncoder(rw).Encode(map[string]any{"artifacts": arts})
}

func (w *modelWorker) loadCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loads
}

func (w *modelWorker) calls() ([]string, []workerRequest) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.paths...), append([]workerRequest(nil), w.bodies...)
}

// service composes the orchestrator and manager the way the server does.
type service struct {
	*orchestrator.Orchestrator
	mgr       *manager.Manager
	modelsDir string
}

func (s *service) Checkpoints() (types.CheckpointsResponse, error) {
	cps, err := registry.List(s.modelsDir)
	if err != nil {
		return types.CheckpointsResponse{}, err
	}
	resp := types.CheckpointsResponse{Checkpoints: cps}
	if cp, ok := s.mgr.Checkpoint(); ok {
		resp.Active = cp.ZChannels
	}
	return resp, nil
}
func (s *service) Status() types.StatusResponse { return s.mgr.Status() }
func (s *service) Ready() bool                  { return s.mgr.Ready() }

type serverOpts struct {
	maxQueueDepth int
	maxWait       time.Duration
	skipLoad      bool
}

// newServer wires a full stack against worker and returns the API server.
func newServer(t *testing.T, datasetDir string, worker *modelWorker, o serverOpts) (*httptest.Server, *manager.Manager) {
	t.Helper()
	store, err := dataset.NewLocal(datasetDir)
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	modelsDir := createModelsDir(t)
	mgr := manager.New(manager.Config{
		Backend:       manager.NewHTTPBackend(manager.HTTPBackendConfig{BaseURL: worker.srv.URL}),
		ModelsDir:     modelsDir,
		MaxQueueDepth: o.maxQueueDepth,
		MaxWait:       o.maxWait,
		Events:        httpapi.MetricsPublisher{},
		Logger:        zerolog.Nop(),
	})
	if !o.skipLoad {
		if err := mgr.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	orch := orchestrator.New(orchestrator.Config{
		Samples:    sample.NewIndex(store, sample.WithSeed(1)),
		Loader:     imaging.NewLoader(store, imaging.DefaultSize),
		Dispatcher: mgr,
		Logger:     zerolog.Nop(),
	})
	srv := httptest.NewServer(httpapi.NewMux(&service{Orchestrator: orch, mgr: mgr, modelsDir: modelsDir}))
	t.Cleanup(srv.Close)
	return srv, mgr
}

func httpGet(t *testing.T, target string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostForm(t *testing.T, target string, form url.Values) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, target string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}
