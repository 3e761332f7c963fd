package usecase

import (
	"companion-srv/internal/mood"
	"companion-srv/internal/mood/repository"
	"companion-srv/internal/orchestrator"
	"companion-srv/pkg/log"
)

type implUseCase struct {
	repo   repository.PostgresRepository
	orchUC orchestrator.UseCase
	l      log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	orchUC orchestrator.UseCase,
	l log.Logger,
) mood.UseCase {
	return &implUseCase{
		repo:   repo,
		orchUC: orchUC,
		l:      l,
	}
}
