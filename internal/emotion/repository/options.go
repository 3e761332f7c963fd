package repository

import (
	"time"

	"companion-srv/internal/emotion"
)

// GetSignalOptions - Options for GetSignal
type GetSignalOptions struct {
	Key string
}

// SaveSignalOptions - Options for SaveSignal
type SaveSignalOptions struct {
	Key    string
	Signal emotion.Signal
	TTL    time.Duration
}
