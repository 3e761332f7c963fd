package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// IsAvailable reports whether the client is configured with an API key.
func (g *geminiImpl) IsAvailable() bool {
	return g.apiKey != ""
}

// Generate generates content based on the prompt with default settings.
func (g *geminiImpl) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateContent(ctx, GenerateInput{Prompt: prompt})
}

// GenerateContent calls the Gemini generateContent API with a bounded timeout.
func (g *geminiImpl) GenerateContent(ctx context.Context, input GenerateInput) (string, error) {
	if g.apiKey == "" {
		return "", ErrUnavailable
	}

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	maxTokens := input.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}
	temperature := input.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}

	req := Request{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: input.Prompt},
				},
			},
		},
		GenerationConfig: &GenerationConfig{
			MaxOutputTokens: maxTokens,
			Temperature:     temperature,
		},
	}
	if input.SystemPrompt != "" {
		req.SystemInstruction = &Content{
			Parts: []Part{{Text: input.SystemPrompt}},
		}
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", BaseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if statusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status: %d, body: %s", statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
