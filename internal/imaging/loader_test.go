package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"agingd/internal/dataset"
	"agingd/internal/sample"
)

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: uint8((x + y) % 256), A: 255})
		}
	}
	return img
}

func newLoader(t *testing.T, dir string) *Loader {
	t.Helper()
	s, err := dataset.NewLocal(dir)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return NewLoader(s, 0)
}

func TestLoadAndTransformShapeAndRange(t *testing.T) {
	dir := t.TempDir()
	p := writePNG(t, dir, "25_0_0_001.png", gradient(200, 150))
	l := newLoader(t, dir)
	ts, err := l.LoadAndTransform(context.Background(), sample.Record{ID: "25_0_0_001.png", Path: p})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ts.Shape != [3]int{3, DefaultSize, DefaultSize} || !ts.Valid() {
		t.Fatalf("unexpected shape %v len=%d", ts.Shape, len(ts.Data))
	}
	for i, v := range ts.Data {
		if v < -1 || v > 1 {
			t.Fatalf("value %d out of range: %v", i, v)
		}
	}
}

func TestLoadAndTransformDeterministic(t *testing.T) {
	dir := t.TempDir()
	p := writePNG(t, dir, "30_1_2_x.png", gradient(97, 131))
	l := newLoader(t, dir)
	rec := sample.Record{Path: p}
	a, err := l.LoadAndTransform(context.Background(), rec)
	if err != nil {
		t.Fatalf("load a: %v", err)
	}
	b, err := l.LoadAndTransform(context.Background(), rec)
	if err != nil {
		t.Fatalf("load b: %v", err)
	}
	for i := range a.Data {
		if math.Float32bits(a.Data[i]) != math.Float32bits(b.Data[i]) {
			t.Fatalf("tensor differs at %d: %v vs %v", i, a.Data[i], b.Data[i])
		}
	}
}

func TestTransformChannelLayout(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 255, G: 0, B: 255, A: 255})
		}
	}
	ts := Transform(img, 4)
	plane := 16
	for i := 0; i < plane; i++ {
		if r, g, b := ts.Data[i], ts.Data[plane+i], ts.Data[2*plane+i]; math.Abs(float64(r-1)) > 1e-2 || math.Abs(float64(g+1)) > 1e-2 || math.Abs(float64(b-1)) > 1e-2 {
			t.Fatalf("pixel %d = (%v,%v,%v), want (1,-1,1)", i, r, g, b)
		}
	}
}

func TestLoadAndTransformCorruptBytes(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "25_0_0_bad.jpg")
	if err := os.WriteFile(p, []byte("definitely not a jpeg"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := newLoader(t, dir).LoadAndTransform(context.Background(), sample.Record{Path: p})
	if !IsDecodeError(err) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestLoadAndTransformMissingPath(t *testing.T) {
	dir := t.TempDir()
	_, err := newLoader(t, dir).LoadAndTransform(context.Background(), sample.Record{Path: filepath.Join(dir, "gone.png")})
	if !IsDecodeError(err) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped ErrNotExist, got %v", err)
	}
}

// failingStore fails every Open with err.
type failingStore struct{ err error }

func (f failingStore) List(context.Context, string) ([]string, error) { return nil, nil }
func (f failingStore) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, f.err
}

func TestLoadAndTransformStoreFailureIsNotDecodeError(t *testing.T) {
	outage := errors.New("s3: RequestTimeout")
	_, err := NewLoader(failingStore{err: outage}, 0).LoadAndTransform(context.Background(), sample.Record{Path: "30_0_0_a.jpg"})
	if err == nil || IsDecodeError(err) {
		t.Fatalf("store outage reported as DecodeError: %v", err)
	}
	if !errors.Is(err, outage) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}

	missing := fmt.Errorf("dataset: open x: %w", os.ErrNotExist)
	_, err = NewLoader(failingStore{err: missing}, 0).LoadAndTransform(context.Background(), sample.Record{Path: "x"})
	if !IsDecodeError(err) {
		t.Fatalf("missing object should be DecodeError, got %v", err)
	}
}
