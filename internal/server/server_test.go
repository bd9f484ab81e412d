package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/session"
	"github.com/ayusman/mudra/internal/store"
)

// newTestServer builds a Server backed by a temp-database store and a
// fresh session, mirroring the wiring in cmd/mudra.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mudra-server-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	s, err := store.New(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	if err := s.Signs().Seed(); err != nil {
		t.Fatalf("failed to seed signs: %v", err)
	}

	sess := session.New(session.Config{Store: s})

	return New(Config{
		Store:   s,
		Session: sess,
		Events:  NewEventsHandler(),
	})
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", response["status"])
	}
	if _, ok := response["uptime"]; !ok {
		t.Error("expected uptime in health response")
	}
}

func TestServer_Health_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	// Every registered route should answer, not fall through to 404.
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/sentence"},
		{http.MethodGet, "/api/signs"},
		{http.MethodGet, "/api/signs/HELLO"},
		{http.MethodGet, "/api/history"},
		{http.MethodGet, "/api/history/export"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()

		srv.ServeHTTP(rec, req)

		if rec.Code == http.StatusNotFound {
			t.Errorf("%s %s returned 404, expected a registered handler", route.method, route.path)
		}
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestServer_WithoutSession(t *testing.T) {
	// A server without a session must not expose the sentence endpoints.
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/sentence", nil)
	rec := httptest.NewRecorder()

	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
