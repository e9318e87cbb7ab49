package httpapi

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("?log=1 override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	r = httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r); got != defaultLogLevel {
		t.Fatalf("default=%v got %v", defaultLogLevel, got)
	}
}

func TestLogRunEnd(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	r := httptest.NewRequest("POST", "/kids?log=info", nil)
	logRunEnd(r, "kids", 502, time.Now(), errors.New("boom"))
	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"mode":"kids"`) || !strings.Contains(out, "boom") {
		t.Fatalf("log line=%s", out)
	}

	buf.Reset()
	r = httptest.NewRequest("POST", "/kids?log=off", nil)
	logRunEnd(r, "kids", 200, time.Now(), nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output with log=off, got %s", buf.String())
	}

	r = httptest.NewRequest("POST", "/kids?log=error", nil)
	logRunEnd(r, "kids", 200, time.Now(), nil)
	if buf.Len() != 0 {
		t.Fatalf("successful runs are not logged at error level, got %s", buf.String())
	}
}
