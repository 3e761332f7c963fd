package usecase

import (
	"companion-srv/internal/coping"
	"companion-srv/internal/model"
	"companion-srv/pkg/log"
)

type implUseCase struct {
	tools []model.CopingTool
	byID  map[string]model.CopingTool
	l     log.Logger
}

// New - Factory function. The catalog is static; an empty tools slice
// falls back to the built-in catalog.
func New(tools []model.CopingTool, l log.Logger) coping.UseCase {
	if len(tools) == 0 {
		tools = coping.Catalog
	}

	byID := make(map[string]model.CopingTool, len(tools))
	for _, tool := range tools {
		byID[tool.ID] = tool
	}

	return &implUseCase{
		tools: tools,
		byID:  byID,
		l:     l,
	}
}
