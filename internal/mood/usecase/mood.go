package usecase

import (
	"context"
	"strings"
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/mood"
	"companion-srv/internal/mood/repository"
)

var validMoods = map[string]struct{}{
	emotion.EmotionStressed:    {},
	emotion.EmotionAnxious:     {},
	emotion.EmotionSad:         {},
	emotion.EmotionOverwhelmed: {},
	emotion.EmotionAngry:       {},
	emotion.EmotionExcited:     {},
	emotion.EmotionPositive:    {},
	emotion.EmotionNeutral:     {},
	emotion.EmotionConfused:    {},
	emotion.EmotionGrateful:    {},
}

// LogMood records a mood check-in for the caller.
func (uc *implUseCase) LogMood(ctx context.Context, sc model.Scope, input mood.LogMoodInput) (mood.EntryOutput, error) {
	moodLabel := strings.ToLower(strings.TrimSpace(input.Mood))
	if _, ok := validMoods[moodLabel]; !ok {
		return mood.EntryOutput{}, mood.ErrInvalidMood
	}
	if input.Intensity < mood.MinIntensity || input.Intensity > mood.MaxIntensity {
		return mood.EntryOutput{}, mood.ErrInvalidIntensity
	}

	note := strings.TrimSpace(input.Note)
	if len(note) > mood.MaxNoteLength {
		return mood.EntryOutput{}, mood.ErrNoteTooLong
	}

	opt := repository.CreateMoodEntryOptions{
		UserID:    sc.UserID,
		Mood:      moodLabel,
		Intensity: input.Intensity,
		Note:      note,
	}

	// Annotation is best effort: a classifier failure never blocks
	// the check-in itself.
	if note != "" {
		sig, assessment, err := uc.orchUC.Evaluate(ctx, note)
		if err != nil {
			uc.l.Warnf(ctx, "mood.usecase.LogMood: note classification failed: %v", err)
		} else {
			opt.Emotion = sig.PrimaryEmotion
			opt.Sentiment = sig.SentimentScore
			if assessment.NeedsIntervention {
				uc.l.Warnf(ctx, "mood.usecase.LogMood: note flagged at safety level %s", assessment.Level)
			}
		}
	}

	entry, err := uc.repo.CreateMoodEntry(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.LogMood: create entry failed: %v", err)
		return mood.EntryOutput{}, err
	}

	return toEntryOutput(entry), nil
}

// ListEntries returns the caller's mood history, newest first.
func (uc *implUseCase) ListEntries(ctx context.Context, sc model.Scope, input mood.ListEntriesInput) ([]mood.EntryOutput, error) {
	days, err := resolveWindow(input.Days)
	if err != nil {
		return nil, err
	}

	entries, err := uc.repo.ListMoodEntries(ctx, repository.ListMoodEntriesOptions{
		UserID: sc.UserID,
		Since:  time.Now().AddDate(0, 0, -days),
		Limit:  input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.ListEntries: list failed: %v", err)
		return nil, err
	}

	outputs := make([]mood.EntryOutput, 0, len(entries))
	for _, entry := range entries {
		outputs = append(outputs, toEntryOutput(entry))
	}

	return outputs, nil
}

// Summary aggregates the caller's check-ins over a day window.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, input mood.SummaryInput) (mood.SummaryOutput, error) {
	days, err := resolveWindow(input.Days)
	if err != nil {
		return mood.SummaryOutput{}, err
	}

	entries, err := uc.repo.ListMoodEntries(ctx, repository.ListMoodEntriesOptions{
		UserID: sc.UserID,
		Since:  time.Now().AddDate(0, 0, -days),
	})
	if err != nil {
		uc.l.Errorf(ctx, "mood.usecase.Summary: list failed: %v", err)
		return mood.SummaryOutput{}, err
	}

	out := mood.SummaryOutput{
		Days:       days,
		MoodCounts: map[string]int{},
	}

	var intensitySum int
	var sentimentSum float64
	var sentimentCount int

	for _, entry := range entries {
		out.TotalEntries++
		out.MoodCounts[entry.Mood]++
		intensitySum += entry.Intensity

		// Only annotated entries carry a sentiment reading.
		if entry.Emotion != "" {
			sentimentSum += entry.Sentiment
			sentimentCount++
		}

		if out.MoodCounts[entry.Mood] > out.MoodCounts[out.MostCommonMood] {
			out.MostCommonMood = entry.Mood
		}
	}

	if out.TotalEntries > 0 {
		out.AverageIntensity = float64(intensitySum) / float64(out.TotalEntries)
	}
	if sentimentCount > 0 {
		out.AverageSentiment = sentimentSum / float64(sentimentCount)
	}

	return out, nil
}

func resolveWindow(days int) (int, error) {
	if days == 0 {
		return mood.DefaultWindowDays, nil
	}
	if days < 0 || days > mood.MaxWindowDays {
		return 0, mood.ErrInvalidWindow
	}
	return days, nil
}

func toEntryOutput(entry model.MoodEntry) mood.EntryOutput {
	return mood.EntryOutput{
		ID:        entry.ID,
		Mood:      entry.Mood,
		Intensity: entry.Intensity,
		Note:      entry.Note,
		Emotion:   entry.Emotion,
		Sentiment: entry.Sentiment,
		CreatedAt: entry.CreatedAt,
	}
}
