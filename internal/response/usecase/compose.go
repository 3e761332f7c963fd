package usecase

import (
	"context"
	"fmt"
	"strings"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
)

// Compose assembles a reply for the message. Crisis replies short
// circuit every backend; the external and hybrid paths degrade to the
// template path rather than failing.
func (uc *implUseCase) Compose(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error) {
	// Crisis replies are deterministic and never call the external
	// generator. Availability matters more than eloquence here.
	if input.Safety.Level == safety.LevelCrisis {
		return response.ComposeOutput{Result: uc.composeCrisis()}, nil
	}

	switch input.Backend {
	case model.BackendRuleBased:
		return response.ComposeOutput{Result: uc.composeTemplate(input)}, nil
	case model.BackendExternalLLM:
		return uc.composeExternal(ctx, input), nil
	case model.BackendHybrid:
		return uc.composeHybrid(ctx, input), nil
	default:
		return response.ComposeOutput{}, fmt.Errorf("%w: %s", response.ErrUnknownBackend, input.Backend)
	}
}

// composeCrisis builds the fixed-shape crisis intervention reply.
func (uc *implUseCase) composeCrisis() response.Result {
	message := uc.pick(response.CrisisMessages) + " " + uc.pick(response.ProfessionalHelpPhrases[response.HelpGeneral])

	return response.Result{
		Message:            message,
		ResponseType:       response.TypeCrisisIntervention,
		CopingSuggestions:  response.CrisisCopingSuggestions,
		Resources:          response.Resources[response.ResourceCrisis],
		FollowUpQuestions:  response.CrisisFollowUpQuestions,
		SafetyIntervention: true,
		Source:             emotion.SourceRuleBased,
	}
}

// composeTemplate assembles a reply entirely from the phrase catalog.
func (uc *implUseCase) composeTemplate(input response.ComposeInput) response.Result {
	emo := input.Signal.PrimaryEmotion

	parts := []string{
		uc.pickKeyed(response.ValidationPhrases, emo),
		uc.pickKeyed(response.SupportPhrases, emo),
	}

	if input.Safety.NeedsIntervention {
		parts = append(parts, uc.pick(response.ProfessionalHelpPhrases[response.HelpHighDistress]))
	}

	coping := uc.copingFor(emo, input.Signal.Intensity)
	if len(coping) > 0 {
		parts = append(parts, "Here's something that might help: "+coping[0])
	}

	return response.Result{
		Message:            strings.Join(parts, " "),
		ResponseType:       response.TypeSupportive,
		CopingSuggestions:  coping,
		Resources:          response.ResourcesFor(emo),
		FollowUpQuestions:  followUpsFor(emo),
		SafetyIntervention: input.Safety.NeedsIntervention,
		Source:             emotion.SourceRuleBased,
	}
}

// pickKeyed selects from the emotion's pool, falling back to the
// neutral pool for unrecognized emotions.
func (uc *implUseCase) pickKeyed(pools map[string][]string, emo string) string {
	pool, ok := pools[emo]
	if !ok {
		pool = pools[emotion.EmotionNeutral]
	}
	return uc.pick(pool)
}

// copingFor samples suggestions without replacement; high intensity
// gets one extra.
func (uc *implUseCase) copingFor(emo, intensity string) []string {
	pool, ok := response.CopingSuggestions[emo]
	if !ok {
		pool = response.CopingSuggestions[emotion.EmotionNeutral]
	}

	n := 2
	if intensity == emotion.IntensityHigh || intensity == emotion.IntensityExtreme {
		n = 3
	}
	return uc.sample(pool, n)
}

func followUpsFor(emo string) []string {
	if questions, ok := response.FollowUpQuestions[emo]; ok {
		return questions
	}
	return response.DefaultFollowUpQuestions
}
