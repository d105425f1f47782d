package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHealth(t *testing.T) {
	r := newTestRouter(t, testConfig(t), &stubAI{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestIndexPage(t *testing.T) {
	cfg := testConfig(t)
	page := []byte("<!doctype html><title>グラレコAI</title>")
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "index_ai.html"), page, 0o644); err != nil {
		t.Fatal(err)
	}
	r := newTestRouter(t, cfg, &stubAI{})

	for _, path := range []string{"/", "/ai", "/static/index_ai.html"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("GET %s status = %d", path, w.Code)
			}
			if !strings.Contains(w.Body.String(), "グラレコAI") {
				t.Errorf("GET %s did not serve the page", path)
			}
		})
	}
}

// The UI page must not be cached; a stale page in a classroom is hard to
// debug remotely.
func TestIndexPage_NoCache(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.StaticDir, "index_ai.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newTestRouter(t, cfg, &stubAI{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("Cache-Control = %q, want no-cache", cc)
	}
}
