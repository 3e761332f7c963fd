package gemini

import (
	"context"
	"time"

	pkghttp "companion-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Generate generates content from a single prompt with defaults.
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateContent generates content with full control over system prompt,
	// token budget, temperature and timeout. A deadline hit is reported as
	// ErrTimeout.
	GenerateContent(ctx context.Context, input GenerateInput) (string, error)
	// IsAvailable reports whether the client is configured with an API key.
	IsAvailable() bool
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if
// empty. An empty API key yields a client where IsAvailable reports false and
// every generation call fails with ErrUnavailable.
func NewGemini(cfg GeminiConfig) IGemini {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &geminiImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   60 * time.Second,
			Retries:   0,
			RetryWait: 1 * time.Second,
		}),
	}
}
