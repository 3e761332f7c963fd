package usecase

import (
	"companion-srv/internal/safety"
)

type implUseCase struct{}

// New - Factory function
func New() safety.UseCase {
	return &implUseCase{}
}
