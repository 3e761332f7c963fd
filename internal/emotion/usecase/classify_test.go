package usecase

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"companion-srv/internal/emotion"
	"companion-srv/internal/emotion/repository"
	"companion-srv/pkg/log"
	"companion-srv/pkg/sentiment"
)

type fakeCache struct {
	signals map[string]emotion.Signal
	saves   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{signals: map[string]emotion.Signal{}}
}

func (f *fakeCache) GetSignal(ctx context.Context, opt repository.GetSignalOptions) (emotion.Signal, error) {
	sig, ok := f.signals[opt.Key]
	if !ok {
		return emotion.Signal{}, repository.ErrCacheMiss
	}
	return sig, nil
}

func (f *fakeCache) SaveSignal(ctx context.Context, opt repository.SaveSignalOptions) error {
	f.signals[opt.Key] = opt.Signal
	f.saves++
	return nil
}

func newTestUseCase(cache repository.Cache) emotion.UseCase {
	return New(sentiment.NewScorer(), cache, 0, log.NewNoop())
}

func TestClassifyScenarios(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	t.Run("stressed message", func(t *testing.T) {
		sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: "I'm feeling really stressed about work today"})
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if sig.PrimaryEmotion != emotion.EmotionStressed {
			t.Errorf("primary: got %q, want %q", sig.PrimaryEmotion, emotion.EmotionStressed)
		}
		if sig.CrisisIndicators {
			t.Error("crisis indicators should be false")
		}
		if sig.SentimentScore >= 0 {
			t.Errorf("sentiment: got %v, want negative", sig.SentimentScore)
		}
		if len(sig.MatchedKeywords) == 0 {
			t.Error("matched keywords should not be empty")
		}
	})

	t.Run("crisis message", func(t *testing.T) {
		sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: "I want to end it all, there's no point in living"})
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if !sig.CrisisIndicators {
			t.Fatal("crisis indicators should be true")
		}
		if len(sig.SafetyFlags) == 0 {
			t.Error("safety flags should carry the matched phrases")
		}
	})

	t.Run("grateful message", func(t *testing.T) {
		sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: "I'm so grateful for everything today!"})
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if sig.PrimaryEmotion != emotion.EmotionGrateful {
			t.Errorf("primary: got %q, want %q", sig.PrimaryEmotion, emotion.EmotionGrateful)
		}
		if sig.SentimentScore <= 0 {
			t.Errorf("sentiment: got %v, want positive", sig.SentimentScore)
		}
	})

	t.Run("empty input short-circuits to neutral", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
			if err != nil {
				t.Fatalf("Classify(%q): %v", text, err)
			}
			if sig.PrimaryEmotion != emotion.EmotionNeutral || sig.Confidence != 0 {
				t.Errorf("Classify(%q): got %q/%v, want neutral/0", text, sig.PrimaryEmotion, sig.Confidence)
			}
		}
	})

	t.Run("unmatched text is neutral", func(t *testing.T) {
		sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: "the quarterly figures were filed on schedule"})
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if sig.PrimaryEmotion != emotion.EmotionNeutral {
			t.Errorf("primary: got %q, want %q", sig.PrimaryEmotion, emotion.EmotionNeutral)
		}
	})
}

func TestClassifyBounds(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	inputs := []string{
		"I'm feeling really stressed about work today",
		"so anxious I can't stop worrying about tomorrow",
		"feeling down and so alone lately",
		"best day ever, I feel amazing",
		"ok",
		"I'm so grateful for everything today!",
	}

	for _, text := range inputs {
		sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
		if err != nil {
			t.Fatalf("Classify(%q): %v", text, err)
		}
		if sig.Confidence < 0 || sig.Confidence > 1 {
			t.Errorf("Classify(%q): confidence %v out of [0,1]", text, sig.Confidence)
		}
		if sig.SentimentScore < -1 || sig.SentimentScore > 1 {
			t.Errorf("Classify(%q): sentiment %v out of [-1,1]", text, sig.SentimentScore)
		}
		if len(sig.SecondaryEmotions) > emotion.MaxSecondaryEmotions {
			t.Errorf("Classify(%q): %d secondary emotions", text, len(sig.SecondaryEmotions))
		}
		if sig.Source != emotion.SourceRuleBased {
			t.Errorf("Classify(%q): source %q", text, sig.Source)
		}
	}
}

func TestClassifyDeterminism(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)
	text := "I'm so overwhelmed, too much to handle and I can't cope"

	first, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
		if err != nil {
			t.Fatalf("Classify: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestClassifyCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	uc := newTestUseCase(cache)
	text := "feeling really stressed at work"

	sig, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if cache.saves != 1 {
		t.Fatalf("saves: got %d, want 1", cache.saves)
	}

	// Second call must be served from the cache without re-saving.
	cached, err := uc.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if cache.saves != 1 {
		t.Errorf("saves after hit: got %d, want 1", cache.saves)
	}
	if !reflect.DeepEqual(sig, cached) {
		t.Errorf("cached signal differs: %+v vs %+v", sig, cached)
	}
}

func TestDetectCrisis(t *testing.T) {
	uc := newTestUseCase(nil)

	found, flags := uc.DetectCrisis("I feel hopeless and worthless")
	if !found || len(flags) != 2 {
		t.Errorf("got %v/%v, want both keywords flagged", found, flags)
	}

	found, _ = uc.DetectCrisis("a perfectly ordinary afternoon")
	if found {
		t.Error("ordinary text should not flag")
	}
}

func TestScoreMonotonicity(t *testing.T) {
	tests := []struct {
		name    string
		emotion string
		base    string
		extras  []string
	}{
		{
			name:    "stressed",
			emotion: emotion.EmotionStressed,
			base:    "I feel stressed about work",
			extras:  []string{"deadline", "pressure", "exhausted"},
		},
		{
			name:    "sad",
			emotion: emotion.EmotionSad,
			base:    "I am sad today",
			extras:  []string{"lonely", "heartbroken", "tears"},
		},
		{
			name:    "anxious",
			emotion: emotion.EmotionAnxious,
			base:    "I am anxious about tomorrow",
			extras:  []string{"nervous", "restless", "scared"},
		},
	}

	uc := newTestUseCase(nil)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			idx := lexiconIndex(t, tc.emotion)

			text := tc.base
			prev := rawCategoryScore(text, idx)
			if prev <= 0 {
				t.Fatalf("base score for %s: got %v, want > 0", tc.emotion, prev)
			}

			for _, extra := range tc.extras {
				text = text + " and " + extra
				got := rawCategoryScore(text, idx)
				if got < prev {
					t.Errorf("score for %s dropped from %v to %v after adding %q", tc.emotion, prev, got, extra)
				}
				prev = got
			}

			// The extended message still resolves to the same primary.
			sig, err := uc.Classify(context.Background(), emotion.ClassifyInput{Text: text})
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if sig.PrimaryEmotion != tc.emotion {
				t.Errorf("primary: got %s, want %s", sig.PrimaryEmotion, tc.emotion)
			}
		})
	}
}

func rawCategoryScore(text string, idx int) float64 {
	lower := strings.ToLower(strings.TrimSpace(text))
	clean := nonWordRe.ReplaceAllString(lower, " ")
	return scoreCategories(clean, lower)[idx]
}

func lexiconIndex(t *testing.T, name string) int {
	t.Helper()
	for i, entry := range emotion.Lexicon {
		if entry.Emotion == name {
			return i
		}
	}
	t.Fatalf("emotion %q not in lexicon", name)
	return -1
}
