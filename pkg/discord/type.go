package discord

import pkghttp "companion-srv/pkg/http"

// DiscordWebhook identifies the target webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

// discordImpl implements IDiscord using the Discord webhook API.
type discordImpl struct {
	webhook    DiscordWebhook
	httpClient pkghttp.IClient
}

// webhookMessage is the Discord webhook request body.
type webhookMessage struct {
	Content string `json:"content"`
}
