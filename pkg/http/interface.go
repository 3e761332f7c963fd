package http

import (
	"context"
	"net/http"
)

// IClient is the outbound JSON client behind the Gemini API and
// Discord webhook calls. Implementations are safe for concurrent use.
type IClient interface {
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a client with the given config. Zero-valued
// fields fall back to the package defaults.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryWait == 0 {
		cfg.RetryWait = DefaultRetryWait
	}
	return &clientImpl{
		client: &http.Client{Timeout: cfg.Timeout},
		config: cfg,
	}
}
