package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"companion-srv/internal/emotion"
	"companion-srv/internal/emotion/repository"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Classify turns a message into an emotion signal. It never fails for
// any string input; sentiment errors degrade to neutral sentiment.
func (uc *implUseCase) Classify(ctx context.Context, input emotion.ClassifyInput) (emotion.Signal, error) {
	if strings.TrimSpace(input.Text) == "" {
		return emotion.NeutralSignal(emotion.SourceRuleBased), nil
	}

	key := cacheKey(input.Text)
	if uc.cache != nil {
		if sig, err := uc.cache.GetSignal(ctx, repository.GetSignalOptions{Key: key}); err == nil {
			return sig, nil
		}
	}

	sig := uc.classifyText(ctx, input.Text)

	if uc.cache != nil {
		if err := uc.cache.SaveSignal(ctx, repository.SaveSignalOptions{
			Key:    key,
			Signal: sig,
			TTL:    uc.cacheTTL,
		}); err != nil {
			uc.l.Warnf(ctx, "emotion.usecase.Classify: cache save failed: %v", err)
		}
	}

	return sig, nil
}

// DetectCrisis scans for crisis keywords without running the full
// pipeline.
func (uc *implUseCase) DetectCrisis(text string) (bool, []string) {
	return emotion.ScanCrisis(text)
}

func (uc *implUseCase) classifyText(ctx context.Context, text string) emotion.Signal {
	// Keep the punctuated lowercase text for phrase regexes, and a
	// punctuation-stripped variant for keyword matching.
	lower := strings.ToLower(strings.TrimSpace(text))
	clean := nonWordRe.ReplaceAllString(lower, " ")

	crisisFound, safetyFlags := emotion.ScanCrisis(lower)

	compound := uc.sentimentCompound(ctx, lower)

	scores := scoreCategories(clean, lower)
	applySentimentWeighting(scores, compound)

	primary, maxScore := primaryEmotion(scores)

	sig := emotion.Signal{
		PrimaryEmotion:    primary,
		Confidence:        confidence(scores, clean),
		SecondaryEmotions: secondaryEmotions(scores, primary, maxScore),
		SentimentScore:    compound,
		Intensity:         determineIntensity(lower),
		MatchedKeywords:   matchedKeywords(clean, primary),
		SafetyFlags:       []string{},
		Source:            emotion.SourceRuleBased,
	}

	if crisisFound {
		sig.CrisisIndicators = true
		sig.SafetyFlags = safetyFlags
	}

	return sig
}

func (uc *implUseCase) sentimentCompound(ctx context.Context, text string) float64 {
	scores, err := uc.scorer.Score(text)
	if err != nil {
		// Sentiment is an enhancement, not a precondition.
		uc.l.Warnf(ctx, "emotion.usecase.classifyText: sentiment scoring failed: %v", err)
		return 0
	}
	return scores.Compound
}

// scoreCategories accumulates one raw score per lexicon category,
// keeping lexicon order for deterministic tie-breaks.
func scoreCategories(clean, lower string) []float64 {
	scores := make([]float64, len(emotion.Lexicon))

	for i, entry := range emotion.Lexicon {
		var score float64

		for _, keyword := range entry.Keywords {
			if strings.Contains(clean, keyword) {
				score += entry.Weight
			}
		}

		// Phrases are stronger signals than bag-of-words keywords.
		for _, phrase := range entry.Phrases {
			if phrase.MatchString(lower) {
				score += entry.Weight * emotion.PhraseWeightFactor
			}
		}

		for _, intensifier := range entry.Intensifiers {
			if strings.Contains(lower, intensifier) {
				score *= emotion.IntensifierFactor
			}
		}

		scores[i] = score
	}

	return scores
}

// applySentimentWeighting amplifies emotion scores congruent with the
// overall tone of the message.
func applySentimentWeighting(scores []float64, compound float64) {
	if compound < -emotion.SentimentBoostThreshold {
		boost := 1 + (-compound)
		for i, entry := range emotion.Lexicon {
			if emotion.IsNegative(entry.Emotion) {
				scores[i] *= boost
			}
		}
	} else if compound > emotion.SentimentBoostThreshold {
		boost := 1 + compound
		for i, entry := range emotion.Lexicon {
			if emotion.IsPositive(entry.Emotion) {
				scores[i] *= boost
			}
		}
	}
}

func primaryEmotion(scores []float64) (string, float64) {
	maxIdx := -1
	maxScore := 0.0
	for i, score := range scores {
		if score > maxScore {
			maxScore = score
			maxIdx = i
		}
	}

	if maxIdx < 0 || maxScore < emotion.PrimaryScoreFloor {
		return emotion.EmotionNeutral, maxScore
	}
	return emotion.Lexicon[maxIdx].Emotion, maxScore
}

func confidence(scores []float64, clean string) float64 {
	var maxScore, totalScore float64
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
		totalScore += score
	}

	var conf float64
	if totalScore > 0 {
		conf = maxScore / totalScore
	}

	// Short messages get down-weighted regardless of keyword strength.
	wordCount := float64(len(strings.Fields(clean)))
	lengthFactor := wordCount / emotion.ConfidenceWordTarget
	if lengthFactor > 1 {
		lengthFactor = 1
	}
	conf *= 0.5 + 0.5*lengthFactor

	if conf < 0 {
		return 0
	}
	if conf > 1 {
		return 1
	}
	return conf
}

func secondaryEmotions(scores []float64, primary string, maxScore float64) []emotion.ScoredEmotion {
	secondary := []emotion.ScoredEmotion{}
	if maxScore <= 0 {
		return secondary
	}

	for i, entry := range emotion.Lexicon {
		if entry.Emotion == primary || scores[i] <= emotion.SecondaryScoreFloor {
			continue
		}
		normalized := scores[i] / maxScore
		if normalized > emotion.SecondaryScoreCap {
			normalized = emotion.SecondaryScoreCap
		}
		secondary = append(secondary, emotion.ScoredEmotion{
			Emotion: entry.Emotion,
			Score:   normalized,
		})
	}

	// Stable sort keeps lexicon order on equal scores.
	sort.SliceStable(secondary, func(i, j int) bool {
		return secondary[i].Score > secondary[j].Score
	})

	if len(secondary) > emotion.MaxSecondaryEmotions {
		secondary = secondary[:emotion.MaxSecondaryEmotions]
	}
	return secondary
}

func determineIntensity(lower string) string {
	bestLevel := ""
	bestCount := 0

	for _, bucket := range emotion.IntensityModifiers() {
		count := 0
		for _, word := range bucket.Words {
			if strings.Contains(lower, word) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			bestLevel = bucket.Level
		}
	}

	if bestCount == 0 {
		return emotion.IntensityMedium
	}
	return bestLevel
}

func matchedKeywords(clean, primary string) []string {
	matched := []string{}

	for _, entry := range emotion.Lexicon {
		if entry.Emotion != primary {
			continue
		}
		for _, keyword := range entry.Keywords {
			if strings.Contains(clean, keyword) {
				matched = append(matched, keyword)
				if len(matched) == emotion.MaxMatchedKeywords {
					return matched
				}
			}
		}
	}

	return matched
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(text))))
	return hex.EncodeToString(sum[:])
}
