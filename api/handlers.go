package api

import (
	"context"
	"io"

	"github.com/moko271/design-thinking-grarec/config"
	"github.com/moko271/design-thinking-grarec/vendors"
)

// AI is the slice of the OpenAI client the handlers use. Tests substitute a
// stub; production wires *vendors.OpenAIClient.
type AI interface {
	Complete(ctx context.Context, opts vendors.CompletionOptions) (*vendors.CompletionResponse, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

// Handlers holds references to server components
type Handlers struct {
	cfg *config.Config
	ai  AI
}

// NewHandlers creates a new Handlers instance
func NewHandlers(cfg *config.Config, ai AI) *Handlers {
	return &Handlers{cfg: cfg, ai: ai}
}
