package usecase

import (
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/emotion/repository"
	"companion-srv/pkg/log"
	"companion-srv/pkg/sentiment"
)

type implUseCase struct {
	scorer   sentiment.IScorer
	cache    repository.Cache
	cacheTTL time.Duration
	l        log.Logger
}

// New - Factory function. The cache is optional; pass nil to classify
// without caching.
func New(
	scorer sentiment.IScorer,
	cache repository.Cache,
	cacheTTL time.Duration,
	l log.Logger,
) emotion.UseCase {
	return &implUseCase{
		scorer:   scorer,
		cache:    cache,
		cacheTTL: cacheTTL,
		l:        l,
	}
}
