package adapthttp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{log: zerolog.New(&buf)}

	var handlerLogged bool
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hlog.FromRequest(r).Info().Msg("inside")
		handlerLogged = true
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK")) //nolint:errcheck
	})
	handler := s.requestLogging(nextHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	req.Header.Set(requestIDHeader, "req-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if got := w.Header().Get(requestIDHeader); got != "req-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}
	if !handlerLogged {
		t.Fatal("handler not called")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, `"request_id":"req-123"`) {
			t.Errorf("Log line missing request id: %s", line)
		}
	}
	access := lines[1]
	if !strings.Contains(access, `"method":"GET"`) || !strings.Contains(access, `"path":"/test-path"`) || !strings.Contains(access, `"status":418`) {
		t.Errorf("Access log missing expected fields. Got: %s", access)
	}
}

func TestLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	s := &Server{log: zerolog.Nop()}
	handler := s.requestLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if len(w.Header().Get(requestIDHeader)) != 36 {
		t.Errorf("Expected a generated uuid, got %q", w.Header().Get(requestIDHeader))
	}
}
