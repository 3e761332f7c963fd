package repository

import (
	"context"

	"companion-srv/internal/emotion"
)

// Cache stores classification results keyed by message digest.
// Classification is deterministic for a fixed lexicon, so cached
// signals never go stale before their TTL.
type Cache interface {
	GetSignal(ctx context.Context, opt GetSignalOptions) (emotion.Signal, error)
	SaveSignal(ctx context.Context, opt SaveSignalOptions) error
}
