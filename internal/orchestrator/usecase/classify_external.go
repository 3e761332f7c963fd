package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/orchestrator"
	"companion-srv/pkg/gemini"
)

const classifySystemPrompt = `You are an emotion classification engine for a mental health support service.
Classify the user's message and answer with a single JSON object, no prose, no markdown fences:
{"primary_emotion": "...", "confidence": 0.0, "secondary_emotions": ["..."], "intensity": "...", "crisis_indicators": false}

Rules:
- primary_emotion must be one of: stressed, anxious, sad, overwhelmed, angry, excited, positive, neutral, confused, grateful, crisis.
- confidence is between 0 and 1.
- intensity must be one of: low, medium, high, extreme.
- secondary_emotions holds at most 3 entries from the same emotion list.
- crisis_indicators is true only for self-harm or suicidal content.`

const (
	classifyTimeout     = 8 * time.Second
	classifyMaxTokens   = 150
	classifyTemperature = 0.1

	// externalCrisisFlag marks a crisis verdict the local scan missed.
	externalCrisisFlag = "external_crisis_indicator"
)

// externalVerdict is the JSON shape the generator is asked for.
type externalVerdict struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	Confidence        float64  `json:"confidence"`
	SecondaryEmotions []string `json:"secondary_emotions"`
	Intensity         string   `json:"intensity"`
	CrisisIndicators  bool     `json:"crisis_indicators"`
}

var knownEmotions = map[string]bool{
	emotion.EmotionStressed:    true,
	emotion.EmotionAnxious:     true,
	emotion.EmotionSad:         true,
	emotion.EmotionOverwhelmed: true,
	emotion.EmotionAngry:       true,
	emotion.EmotionExcited:     true,
	emotion.EmotionPositive:    true,
	emotion.EmotionNeutral:     true,
	emotion.EmotionConfused:    true,
	emotion.EmotionGrateful:    true,
	emotion.EmotionCrisis:      true,
}

var knownIntensities = map[string]bool{
	emotion.IntensityLow:     true,
	emotion.IntensityMedium:  true,
	emotion.IntensityHigh:    true,
	emotion.IntensityExtreme: true,
}

// classifyExternal asks the generator for a JSON verdict and merges it
// with the local rule signal. The local crisis scan is always OR'd in
// so a bad verdict can never hide a crisis.
func (uc *implUseCase) classifyExternal(ctx context.Context, text string) (emotion.Signal, error) {
	rule, err := uc.emotionUC.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		return emotion.Signal{}, err
	}

	raw, err := uc.gemini.GenerateContent(ctx, gemini.GenerateInput{
		SystemPrompt: classifySystemPrompt,
		Prompt:       text,
		MaxTokens:    classifyMaxTokens,
		Temperature:  classifyTemperature,
		Timeout:      classifyTimeout,
	})
	if err != nil {
		uc.l.Errorf(ctx, "orchestrator.usecase.classifyExternal: generate failed: %v", err)
		return emotion.Signal{}, fmt.Errorf("%w: %v", orchestrator.ErrExternalClassify, err)
	}

	verdict, err := parseVerdict(raw)
	if err != nil {
		uc.l.Errorf(ctx, "orchestrator.usecase.classifyExternal: parse verdict failed: %v", err)
		return emotion.Signal{}, fmt.Errorf("%w: %v", orchestrator.ErrExternalClassify, err)
	}

	secondary := make([]emotion.ScoredEmotion, 0, len(verdict.SecondaryEmotions))
	for _, name := range verdict.SecondaryEmotions {
		if !knownEmotions[name] || len(secondary) >= emotion.MaxSecondaryEmotions {
			continue
		}
		secondary = append(secondary, emotion.ScoredEmotion{Emotion: name, Score: 0.5})
	}

	// A crisis verdict with no locally matched keyword still carries a
	// flag, so crisis signals are never flagless.
	flags := rule.SafetyFlags
	if verdict.CrisisIndicators && len(flags) == 0 {
		flags = []string{externalCrisisFlag}
	}

	return emotion.Signal{
		PrimaryEmotion:    verdict.PrimaryEmotion,
		Confidence:        verdict.Confidence,
		SecondaryEmotions: secondary,
		SentimentScore:    rule.SentimentScore,
		Intensity:         verdict.Intensity,
		MatchedKeywords:   []string{},
		CrisisIndicators:  verdict.CrisisIndicators || rule.CrisisIndicators,
		SafetyFlags:       flags,
		Source:            emotion.SourceExternal,
	}, nil
}

// classifyHybrid combines the rule signal with the external verdict.
// It never fails: when the generator is unavailable or errors, the
// rule signal is served under the hybrid source.
func (uc *implUseCase) classifyHybrid(ctx context.Context, text string) (emotion.Signal, error) {
	rule, err := uc.emotionUC.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		return emotion.Signal{}, err
	}

	if !uc.gemini.IsAvailable() {
		rule.Source = emotion.SourceHybrid
		return rule, nil
	}

	external, err := uc.classifyExternal(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "orchestrator.usecase.classifyHybrid: external signal unavailable: %v", err)
		rule.Source = emotion.SourceHybrid
		return rule, nil
	}

	return combineSignals(rule, external), nil
}

// combineSignals keeps the higher-confidence primary, merges secondary
// emotions, and keeps the rule side's sentiment and intensity. Crisis
// flags are OR'd.
func combineSignals(rule, external emotion.Signal) emotion.Signal {
	primary := rule.PrimaryEmotion
	confidence := rule.Confidence
	if external.Confidence > rule.Confidence {
		primary = external.PrimaryEmotion
		confidence = external.Confidence
	}

	secondary := append([]emotion.ScoredEmotion{}, rule.SecondaryEmotions...)
	for _, cand := range external.SecondaryEmotions {
		seen := false
		for _, existing := range secondary {
			if existing.Emotion == cand.Emotion {
				seen = true
				break
			}
		}
		if !seen {
			secondary = append(secondary, cand)
		}
	}
	if len(secondary) > emotion.MaxSecondaryEmotions {
		secondary = secondary[:emotion.MaxSecondaryEmotions]
	}

	flags := append([]string{}, rule.SafetyFlags...)
	for _, flag := range external.SafetyFlags {
		seen := false
		for _, existing := range flags {
			if existing == flag {
				seen = true
				break
			}
		}
		if !seen {
			flags = append(flags, flag)
		}
	}

	return emotion.Signal{
		PrimaryEmotion:    primary,
		Confidence:        confidence,
		SecondaryEmotions: secondary,
		SentimentScore:    rule.SentimentScore,
		Intensity:         rule.Intensity,
		MatchedKeywords:   rule.MatchedKeywords,
		CrisisIndicators:  rule.CrisisIndicators || external.CrisisIndicators,
		SafetyFlags:       flags,
		Source:            emotion.SourceHybrid,
	}
}

// parseVerdict decodes and sanitizes the generator's JSON verdict.
// Markdown fences are tolerated even though the prompt forbids them.
func parseVerdict(raw string) (externalVerdict, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var verdict externalVerdict
	if err := json.Unmarshal([]byte(cleaned), &verdict); err != nil {
		return externalVerdict{}, fmt.Errorf("decode verdict: %w", err)
	}

	if !knownEmotions[verdict.PrimaryEmotion] {
		return externalVerdict{}, fmt.Errorf("unknown emotion %q", verdict.PrimaryEmotion)
	}
	if verdict.Confidence < 0 {
		verdict.Confidence = 0
	}
	if verdict.Confidence > 1 {
		verdict.Confidence = 1
	}
	if !knownIntensities[verdict.Intensity] {
		verdict.Intensity = emotion.IntensityMedium
	}
	if verdict.PrimaryEmotion == emotion.EmotionCrisis {
		verdict.CrisisIndicators = true
	}

	return verdict, nil
}
