package usecase

import (
	"context"
	"sort"

	"companion-srv/internal/coping"
	"companion-srv/internal/model"
)

// ListTools returns catalog entries matching the filters, in catalog order.
func (uc *implUseCase) ListTools(ctx context.Context, input coping.ListToolsInput) ([]model.CopingTool, error) {
	out := make([]model.CopingTool, 0, len(uc.tools))
	for _, tool := range uc.tools {
		if input.Type != "" && tool.Type != input.Type {
			continue
		}
		if input.Emotion != "" && !targets(tool, input.Emotion) {
			continue
		}
		if input.Difficulty != "" && tool.Difficulty != input.Difficulty {
			continue
		}
		if input.MaxDurationMinutes > 0 && tool.DurationMinutes > input.MaxDurationMinutes {
			continue
		}
		out = append(out, tool)
	}
	return out, nil
}

// GetTool returns one catalog entry by id.
func (uc *implUseCase) GetTool(ctx context.Context, input coping.GetToolInput) (model.CopingTool, error) {
	tool, ok := uc.byID[input.ID]
	if !ok {
		return model.CopingTool{}, coping.ErrToolNotFound
	}
	return tool, nil
}

// Recommend returns tools for an emotion, the most specific matches
// first. Preference filters narrow the pool and raise the cap.
func (uc *implUseCase) Recommend(ctx context.Context, input coping.RecommendInput) ([]model.CopingTool, error) {
	if input.Emotion == "" {
		return nil, coping.ErrEmotionRequired
	}

	matching := make([]model.CopingTool, 0, len(uc.tools))
	for _, tool := range uc.tools {
		if targets(tool, input.Emotion) || targets(tool, coping.EmotionGeneral) {
			matching = append(matching, tool)
		}
	}

	// Tools naming the emotion explicitly outrank general-purpose ones.
	sort.SliceStable(matching, func(i, j int) bool {
		return targets(matching[i], input.Emotion) && !targets(matching[j], input.Emotion)
	})

	personalized := len(input.PreferredTypes) > 0 || input.Difficulty != "" || input.MaxDurationMinutes > 0
	if !personalized {
		return capTools(matching, coping.MaxRecommendations), nil
	}

	filtered := make([]model.CopingTool, 0, len(matching))
	for _, tool := range matching {
		if len(input.PreferredTypes) > 0 && !containsString(input.PreferredTypes, tool.Type) {
			continue
		}
		if input.Difficulty != "" && tool.Difficulty != input.Difficulty {
			continue
		}
		if input.MaxDurationMinutes > 0 && tool.DurationMinutes > input.MaxDurationMinutes {
			continue
		}
		filtered = append(filtered, tool)
	}

	return capTools(filtered, coping.MaxPersonalizedRecommendations), nil
}

func targets(tool model.CopingTool, emotion string) bool {
	for _, target := range tool.TargetEmotions {
		if target == emotion {
			return true
		}
	}
	return false
}

func capTools(tools []model.CopingTool, n int) []model.CopingTool {
	if len(tools) > n {
		return tools[:n]
	}
	return tools
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
