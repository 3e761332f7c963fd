package usecase

import (
	"companion-srv/internal/chat"
	"companion-srv/internal/chat/repository"
	"companion-srv/internal/orchestrator"
	"companion-srv/pkg/log"
)

type implUseCase struct {
	repo     repository.PostgresRepository
	orchUC   orchestrator.UseCase
	producer chat.Producer
	l        log.Logger
}

// New - Factory function. The producer may be nil when analytics
// publishing is disabled.
func New(
	repo repository.PostgresRepository,
	orchUC orchestrator.UseCase,
	producer chat.Producer,
	l log.Logger,
) chat.UseCase {
	return &implUseCase{
		repo:     repo,
		orchUC:   orchUC,
		producer: producer,
		l:        l,
	}
}
