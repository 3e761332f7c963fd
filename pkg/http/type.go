package http

import (
	"net/http"
	"time"
)

// ClientConfig tunes timeout and retry behavior per upstream. The
// Gemini client runs with a long timeout and no retries; the Discord
// notifier retries quickly so alerts are not lost to a blip.
type ClientConfig struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}
