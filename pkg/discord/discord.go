package discord

import (
	"context"
	"fmt"
	"net/http"
)

const webhookBaseURL = "https://discord.com/api/webhooks"

// Send posts a plain-text message to the configured webhook.
func (d *discordImpl) Send(ctx context.Context, content string) error {
	// Discord rejects messages over 2000 characters.
	if len(content) > 2000 {
		content = content[:1997] + "..."
	}

	url := fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)

	_, statusCode, err := d.httpClient.Post(ctx, url, webhookMessage{Content: content}, nil)
	if err != nil {
		return fmt.Errorf("failed to call Discord webhook: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("Discord webhook returned status: %d", statusCode)
	}
	return nil
}
