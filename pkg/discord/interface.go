package discord

import (
	"context"
	"fmt"
	"time"

	pkghttp "companion-srv/pkg/http"
	"companion-srv/pkg/log"
)

// IDiscord defines the interface for Discord webhook notifications.
// Implementations are safe for concurrent use.
type IDiscord interface {
	Send(ctx context.Context, content string) error
}

// New creates a new Discord webhook client. Both webhook ID and token are required.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, fmt.Errorf("discord: webhook ID and token are required")
	}
	return &discordImpl{
		webhook: *webhook,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   10 * time.Second,
			Retries:   2,
			RetryWait: 500 * time.Millisecond,
		}),
	}, nil
}
