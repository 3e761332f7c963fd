package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Post sends the JSON-encoded body and returns the raw response body
// and status code. Server errors (5xx) and transport errors are
// retried with a fresh request each attempt.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	var resp *http.Response
	var err error
	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		var req *http.Request
		req, err = c.newPostRequest(ctx, url, payload, headers)
		if err != nil {
			return nil, 0, err
		}

		resp, err = c.client.Do(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			break
		}
		if err == nil {
			// Drain so the connection can be reused for the retry.
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		if attempt < c.config.Retries {
			time.Sleep(c.config.RetryWait)
		}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, err)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

func (c *clientImpl) newPostRequest(ctx context.Context, url string, payload []byte, headers map[string]string) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}
