package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/mood"
	"companion-srv/internal/mood/repository"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/safety"
	"companion-srv/pkg/log"

	"github.com/google/uuid"
)

type fakeRepo struct {
	entries   []model.MoodEntry
	createErr error
}

func (f *fakeRepo) CreateMoodEntry(ctx context.Context, opt repository.CreateMoodEntryOptions) (model.MoodEntry, error) {
	if f.createErr != nil {
		return model.MoodEntry{}, f.createErr
	}
	entry := model.MoodEntry{
		ID:        uuid.New().String(),
		UserID:    opt.UserID,
		Mood:      opt.Mood,
		Intensity: opt.Intensity,
		Note:      opt.Note,
		Emotion:   opt.Emotion,
		Sentiment: opt.Sentiment,
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeRepo) ListMoodEntries(ctx context.Context, opt repository.ListMoodEntriesOptions) ([]model.MoodEntry, error) {
	var out []model.MoodEntry
	for _, e := range f.entries {
		if e.UserID == opt.UserID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeOrchestrator struct {
	signal     emotion.Signal
	assessment safety.Assessment
	err        error
	calls      int
}

func (f *fakeOrchestrator) ProcessMessage(ctx context.Context, input orchestrator.ProcessInput) (orchestrator.ProcessOutput, error) {
	return orchestrator.ProcessOutput{}, nil
}

func (f *fakeOrchestrator) Classify(ctx context.Context, text string) (emotion.Signal, error) {
	return f.signal, f.err
}

func (f *fakeOrchestrator) Evaluate(ctx context.Context, text string) (emotion.Signal, safety.Assessment, error) {
	f.calls++
	if f.err != nil {
		return emotion.Signal{}, safety.Assessment{}, f.err
	}
	return f.signal, f.assessment, nil
}

func (f *fakeOrchestrator) Stats() orchestrator.Stats {
	return orchestrator.Stats{}
}

func stressedSignal() emotion.Signal {
	sig := emotion.NeutralSignal(emotion.SourceRuleBased)
	sig.PrimaryEmotion = emotion.EmotionStressed
	sig.SentimentScore = -0.4
	return sig
}

func TestLogMood(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := New(&fakeRepo{}, &fakeOrchestrator{}, log.NewNoop())

		if _, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "bored", Intensity: 5}); !errors.Is(err, mood.ErrInvalidMood) {
			t.Errorf("unknown mood: got %v, want ErrInvalidMood", err)
		}
		if _, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "sad", Intensity: 0}); !errors.Is(err, mood.ErrInvalidIntensity) {
			t.Errorf("intensity 0: got %v, want ErrInvalidIntensity", err)
		}
		if _, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "sad", Intensity: 11}); !errors.Is(err, mood.ErrInvalidIntensity) {
			t.Errorf("intensity 11: got %v, want ErrInvalidIntensity", err)
		}
		long := strings.Repeat("a", mood.MaxNoteLength+1)
		if _, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "sad", Intensity: 5, Note: long}); !errors.Is(err, mood.ErrNoteTooLong) {
			t.Errorf("long note: got %v, want ErrNoteTooLong", err)
		}
	})

	t.Run("annotates note with classified emotion and sentiment", func(t *testing.T) {
		repo := &fakeRepo{}
		orch := &fakeOrchestrator{signal: stressedSignal()}
		uc := New(repo, orch, log.NewNoop())

		out, err := uc.LogMood(ctx, sc, mood.LogMoodInput{
			Mood:      "Stressed",
			Intensity: 7,
			Note:      "work was a lot today",
		})
		if err != nil {
			t.Fatalf("LogMood: %v", err)
		}
		if out.Mood != emotion.EmotionStressed {
			t.Errorf("mood: got %q, want normalized %q", out.Mood, emotion.EmotionStressed)
		}
		if out.Emotion != emotion.EmotionStressed {
			t.Errorf("emotion annotation: got %q, want %q", out.Emotion, emotion.EmotionStressed)
		}
		if out.Sentiment != -0.4 {
			t.Errorf("sentiment: got %v, want -0.4", out.Sentiment)
		}
		if orch.calls != 1 {
			t.Errorf("Evaluate calls: got %d, want 1", orch.calls)
		}
	})

	t.Run("skips classification without a note", func(t *testing.T) {
		orch := &fakeOrchestrator{signal: stressedSignal()}
		uc := New(&fakeRepo{}, orch, log.NewNoop())

		out, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "grateful", Intensity: 8})
		if err != nil {
			t.Fatalf("LogMood: %v", err)
		}
		if orch.calls != 0 {
			t.Errorf("Evaluate calls: got %d, want 0", orch.calls)
		}
		if out.Emotion != "" {
			t.Errorf("emotion annotation: got %q, want empty", out.Emotion)
		}
	})

	t.Run("classifier failure does not block the check-in", func(t *testing.T) {
		orch := &fakeOrchestrator{err: errors.New("backend down")}
		uc := New(&fakeRepo{}, orch, log.NewNoop())

		out, err := uc.LogMood(ctx, sc, mood.LogMoodInput{Mood: "anxious", Intensity: 6, Note: "rough morning"})
		if err != nil {
			t.Fatalf("LogMood: %v", err)
		}
		if out.Emotion != "" {
			t.Errorf("emotion annotation: got %q, want empty", out.Emotion)
		}
		if out.Note != "rough morning" {
			t.Errorf("note: got %q", out.Note)
		}
	})
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	repo := &fakeRepo{entries: []model.MoodEntry{
		{ID: "1", UserID: "user-1", Mood: "sad", Intensity: 3},
		{ID: "2", UserID: "user-2", Mood: "excited", Intensity: 9},
	}}
	uc := New(repo, &fakeOrchestrator{}, log.NewNoop())

	out, err := uc.ListEntries(ctx, sc, mood.ListEntriesInput{})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(out) != 1 || out[0].ID != "1" {
		t.Errorf("entries: got %+v, want only entry 1", out)
	}

	if _, err := uc.ListEntries(ctx, sc, mood.ListEntriesInput{Days: mood.MaxWindowDays + 1}); !errors.Is(err, mood.ErrInvalidWindow) {
		t.Errorf("oversized window: got %v, want ErrInvalidWindow", err)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	repo := &fakeRepo{entries: []model.MoodEntry{
		{UserID: "user-1", Mood: "stressed", Intensity: 6, Emotion: "stressed", Sentiment: -0.5},
		{UserID: "user-1", Mood: "stressed", Intensity: 8, Emotion: "anxious", Sentiment: -0.3},
		{UserID: "user-1", Mood: "grateful", Intensity: 4},
	}}
	uc := New(repo, &fakeOrchestrator{}, log.NewNoop())

	out, err := uc.Summary(ctx, sc, mood.SummaryInput{Days: 7})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if out.Days != 7 {
		t.Errorf("days: got %d, want 7", out.Days)
	}
	if out.TotalEntries != 3 {
		t.Errorf("total entries: got %d, want 3", out.TotalEntries)
	}
	if out.MoodCounts["stressed"] != 2 || out.MoodCounts["grateful"] != 1 {
		t.Errorf("mood counts: got %v", out.MoodCounts)
	}
	if out.MostCommonMood != "stressed" {
		t.Errorf("most common mood: got %q, want stressed", out.MostCommonMood)
	}
	if want := (6 + 8 + 4) / 3.0; out.AverageIntensity != want {
		t.Errorf("average intensity: got %v, want %v", out.AverageIntensity, want)
	}
	if want := (-0.5 + -0.3) / 2; out.AverageSentiment != want {
		t.Errorf("average sentiment: got %v, want %v", out.AverageSentiment, want)
	}
}

func TestSummaryEmpty(t *testing.T) {
	uc := New(&fakeRepo{}, &fakeOrchestrator{}, log.NewNoop())

	out, err := uc.Summary(context.Background(), model.Scope{UserID: "user-1"}, mood.SummaryInput{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if out.TotalEntries != 0 || out.AverageIntensity != 0 || out.AverageSentiment != 0 {
		t.Errorf("empty summary: got %+v", out)
	}
	if out.Days != mood.DefaultWindowDays {
		t.Errorf("default window: got %d, want %d", out.Days, mood.DefaultWindowDays)
	}
}
