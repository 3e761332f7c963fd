package coping

import (
	"context"

	"companion-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListTools(ctx context.Context, input ListToolsInput) ([]model.CopingTool, error)
	GetTool(ctx context.Context, input GetToolInput) (model.CopingTool, error)
	Recommend(ctx context.Context, input RecommendInput) ([]model.CopingTool, error)
}
