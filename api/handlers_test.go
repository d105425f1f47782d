package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moko271/design-thinking-grarec/config"
	"github.com/moko271/design-thinking-grarec/vendors"
)

// stubAI implements AI with canned responses and records what it was given.
type stubAI struct {
	completion    *vendors.CompletionResponse
	completionErr error
	transcript    string
	transcriptErr error

	gotOpts     vendors.CompletionOptions
	gotFilename string
	gotAudio    []byte
}

func (s *stubAI) Complete(_ context.Context, opts vendors.CompletionOptions) (*vendors.CompletionResponse, error) {
	s.gotOpts = opts
	if s.completionErr != nil {
		return nil, s.completionErr
	}
	return s.completion, nil
}

func (s *stubAI) Transcribe(_ context.Context, audio io.Reader, filename string) (string, error) {
	s.gotFilename = filename
	s.gotAudio, _ = io.ReadAll(audio)
	if s.transcriptErr != nil {
		return "", s.transcriptErr
	}
	return s.transcript, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:       5000,
		Env:        "development",
		StaticDir:  t.TempDir(),
		MaxAudioMB: 25,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, ai AI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, NewHandlers(cfg, ai))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}
