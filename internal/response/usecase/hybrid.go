package usecase

import (
	"context"
	"strings"

	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
)

// composeHybrid computes the template reply as a guaranteed baseline,
// then tries to upgrade the message text with the external generator.
func (uc *implUseCase) composeHybrid(ctx context.Context, input response.ComposeInput) response.ComposeOutput {
	baseline := uc.composeTemplate(input)

	text, err := uc.generate(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "response.usecase.composeHybrid: generator failed, serving baseline: %v", err)
		baseline.ResponseType = response.TypeTemplateFallback
		baseline.Source = emotion.SourceFallback
		return response.ComposeOutput{
			Result:      baseline,
			Degraded:    true,
			DegradedErr: err,
		}
	}

	message := truncateWords(text, response.MaxResponseWords)
	if !acceptableExternalMessage(message) {
		// Keep the baseline text; the external reply was dismissive
		// or too thin to trust.
		message = baseline.Message
	}

	externalCoping := uc.copingFor(input.Signal.PrimaryEmotion, input.Signal.Intensity)

	return response.ComposeOutput{
		Result: response.Result{
			Message:            message,
			ResponseType:       response.TypeHybridSupportive,
			CopingSuggestions:  mergeCoping(externalCoping, baseline.CopingSuggestions),
			Resources:          baseline.Resources,
			FollowUpQuestions:  baseline.FollowUpQuestions,
			SafetyIntervention: input.Safety.NeedsIntervention,
			Source:             emotion.SourceHybrid,
		},
	}
}

// acceptableExternalMessage rejects replies that are too short or
// contain dismissive language.
func acceptableExternalMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < response.MinExternalMessageLen {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range response.DismissivePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

// mergeCoping takes up to two suggestions from each side,
// deduplicated, capped at three total.
func mergeCoping(external, template []string) []string {
	merged := []string{}
	seen := map[string]bool{}

	take := func(pool []string, limit int) {
		taken := 0
		for _, suggestion := range pool {
			if taken == limit || len(merged) == response.MaxCopingSuggestions {
				return
			}
			if seen[suggestion] {
				continue
			}
			seen[suggestion] = true
			merged = append(merged, suggestion)
			taken++
		}
	}

	take(external, response.HybridExternalCoping)
	take(template, response.HybridTemplateCoping)

	return merged
}
