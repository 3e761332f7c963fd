package usecase

import (
	"context"
	"strings"

	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
	"companion-srv/pkg/gemini"
)

// composeExternal asks the external generator for the reply text. Any
// failure degrades transparently to the template path; the caller
// still sees a successful result.
func (uc *implUseCase) composeExternal(ctx context.Context, input response.ComposeInput) response.ComposeOutput {
	text, err := uc.generate(ctx, input)
	if err != nil {
		uc.l.Warnf(ctx, "response.usecase.composeExternal: generator failed, serving template: %v", err)
		result := uc.composeTemplate(input)
		result.ResponseType = response.TypeTemplateFallback
		result.Source = emotion.SourceFallback
		return response.ComposeOutput{
			Result:      result,
			Degraded:    true,
			DegradedErr: err,
		}
	}

	emo := input.Signal.PrimaryEmotion
	return response.ComposeOutput{
		Result: response.Result{
			Message:            truncateWords(text, response.MaxResponseWords),
			ResponseType:       response.TypeAISupportive,
			CopingSuggestions:  uc.copingFor(emo, input.Signal.Intensity),
			Resources:          response.ResourcesFor(emo),
			FollowUpQuestions:  followUpsFor(emo),
			SafetyIntervention: input.Safety.NeedsIntervention,
			Source:             emotion.SourceExternal,
		},
	}
}

func (uc *implUseCase) generate(ctx context.Context, input response.ComposeInput) (string, error) {
	out, err := uc.gemini.GenerateContent(ctx, gemini.GenerateInput{
		SystemPrompt: buildSystemPrompt(input.Signal),
		Prompt:       buildUserPrompt(input),
		MaxTokens:    gemini.DefaultMaxOutputTokens,
		Temperature:  gemini.DefaultTemperature,
		Timeout:      gemini.DefaultGenerateTimeout,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// truncateWords cuts the message at the word boundary with an
// ellipsis when it exceeds the budget.
func truncateWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
