package shield

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hazyhaar/scores/kit"
)

func TestDefaultStack(t *testing.T) {
	var gotMethod, gotTrace, gotTransport string
	h := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotTrace = kit.GetTraceID(r.Context())
		gotTransport = kit.GetTransport(r.Context())
		if GetLogger(r.Context()) == nil {
			t.Error("nil request logger")
		}
		w.WriteHeader(http.StatusOK)
	}))
	stack := DefaultStack()
	for i := len(stack) - 1; i >= 0; i-- {
		h = stack[i](h)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/games/", nil))

	if gotMethod != http.MethodGet {
		t.Errorf("method: got %q, want GET", gotMethod)
	}
	if len(gotTrace) != 8 {
		t.Errorf("trace id: got %q, want 8 hex chars", gotTrace)
	}
	if rec.Header().Get("X-Trace-ID") != gotTrace {
		t.Errorf("X-Trace-ID: got %q, want %q", rec.Header().Get("X-Trace-ID"), gotTrace)
	}
	if gotTransport != "http" {
		t.Errorf("transport: got %q", gotTransport)
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control: got %q", got)
	}
}

func TestSecurityHeaders_SkipsEmpty(t *testing.T) {
	h := SecurityHeaders(HeaderConfig{XFrameOptions: "DENY"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("X-Frame-Options not set")
	}
	if _, ok := rec.Header()["Content-Security-Policy"]; ok {
		t.Error("empty CSP should not be set")
	}
}

func TestGetLogger_Default(t *testing.T) {
	if GetLogger(httptest.NewRequest(http.MethodGet, "/", nil).Context()) == nil {
		t.Fatal("GetLogger returned nil")
	}
}
