package usecase

import (
	"context"
	"testing"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
	"companion-srv/pkg/log"
)

func TestParseVerdict(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		verdict, err := parseVerdict(`{"primary_emotion":"anxious","confidence":0.8,"intensity":"high"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict.PrimaryEmotion != emotion.EmotionAnxious || verdict.Confidence != 0.8 {
			t.Errorf("verdict: got %+v", verdict)
		}
	})

	t.Run("tolerates markdown fences", func(t *testing.T) {
		raw := "```json\n{\"primary_emotion\":\"sad\",\"confidence\":0.7,\"intensity\":\"medium\"}\n```"
		verdict, err := parseVerdict(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict.PrimaryEmotion != emotion.EmotionSad {
			t.Errorf("primary emotion: got %s, want %s", verdict.PrimaryEmotion, emotion.EmotionSad)
		}
	})

	t.Run("rejects unknown emotion", func(t *testing.T) {
		if _, err := parseVerdict(`{"primary_emotion":"melancholy","confidence":0.5}`); err == nil {
			t.Fatal("expected error for unknown emotion")
		}
	})

	t.Run("rejects prose", func(t *testing.T) {
		if _, err := parseVerdict("The user seems quite sad today."); err == nil {
			t.Fatal("expected error for non-JSON reply")
		}
	})

	t.Run("clamps confidence and defaults intensity", func(t *testing.T) {
		verdict, err := parseVerdict(`{"primary_emotion":"angry","confidence":1.4,"intensity":"volcanic"}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if verdict.Confidence != 1 {
			t.Errorf("confidence: got %v, want 1", verdict.Confidence)
		}
		if verdict.Intensity != emotion.IntensityMedium {
			t.Errorf("intensity: got %s, want %s", verdict.Intensity, emotion.IntensityMedium)
		}
	})

	t.Run("crisis emotion forces the indicator", func(t *testing.T) {
		verdict, err := parseVerdict(`{"primary_emotion":"crisis","confidence":0.9,"intensity":"extreme","crisis_indicators":false}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !verdict.CrisisIndicators {
			t.Error("crisis primary must set crisis_indicators")
		}
	})
}

func TestCombineSignals(t *testing.T) {
	rule := emotion.Signal{
		PrimaryEmotion:    emotion.EmotionStressed,
		Confidence:        0.5,
		SecondaryEmotions: []emotion.ScoredEmotion{{Emotion: emotion.EmotionAnxious, Score: 0.4}},
		SentimentScore:    -0.6,
		Intensity:         emotion.IntensityHigh,
		MatchedKeywords:   []string{"stressed"},
		SafetyFlags:       []string{},
		Source:            emotion.SourceRuleBased,
	}
	external := emotion.Signal{
		PrimaryEmotion:    emotion.EmotionOverwhelmed,
		Confidence:        0.9,
		SecondaryEmotions: []emotion.ScoredEmotion{{Emotion: emotion.EmotionAnxious, Score: 0.5}, {Emotion: emotion.EmotionSad, Score: 0.5}},
		SentimentScore:    0,
		Intensity:         emotion.IntensityLow,
		CrisisIndicators:  true,
		SafetyFlags:       []string{"hurt myself"},
		Source:            emotion.SourceExternal,
	}

	combined := combineSignals(rule, external)

	if combined.PrimaryEmotion != emotion.EmotionOverwhelmed || combined.Confidence != 0.9 {
		t.Errorf("higher-confidence primary not kept: got %s/%v", combined.PrimaryEmotion, combined.Confidence)
	}
	if combined.SentimentScore != -0.6 {
		t.Errorf("sentiment must come from the rule side: got %v", combined.SentimentScore)
	}
	if combined.Intensity != emotion.IntensityHigh {
		t.Errorf("intensity must come from the rule side: got %s", combined.Intensity)
	}
	if !combined.CrisisIndicators {
		t.Error("crisis flags must be OR'd")
	}
	if len(combined.SecondaryEmotions) != 2 {
		t.Errorf("secondary merge: got %v", combined.SecondaryEmotions)
	}
	if combined.Source != emotion.SourceHybrid {
		t.Errorf("source: got %s, want %s", combined.Source, emotion.SourceHybrid)
	}
}

func TestClassifyHybridDegradesToRule(t *testing.T) {
	uc := New(
		&stubEmotionUC{sig: ruleSignal()},
		&stubSafetyUC{assessment: safety.Assessment{Level: safety.LevelNormal}},
		&stubResponseUC{compose: okCompose(response.Result{})},
		&stubGemini{available: false},
		orchestrator.NewHealthTracker(),
		model.BackendRuleBased,
		log.NewNoop(),
		nil,
	).(*implUseCase)

	sig, err := uc.classifyHybrid(context.Background(), "long week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Source != emotion.SourceHybrid {
		t.Errorf("source: got %s, want %s", sig.Source, emotion.SourceHybrid)
	}
	if sig.PrimaryEmotion != emotion.EmotionStressed {
		t.Errorf("primary emotion: got %s", sig.PrimaryEmotion)
	}
}

func TestClassifyExternalCrisisVerdictCarriesFlag(t *testing.T) {
	verdict := `{"primary_emotion":"crisis","confidence":0.9,"intensity":"extreme","crisis_indicators":true}`
	uc := New(
		&stubEmotionUC{sig: ruleSignal()},
		&stubSafetyUC{assessment: safety.Assessment{Level: safety.LevelNormal}},
		&stubResponseUC{compose: okCompose(response.Result{})},
		&stubGemini{available: true, reply: verdict},
		orchestrator.NewHealthTracker(),
		model.BackendRuleBased,
		log.NewNoop(),
		nil,
	).(*implUseCase)

	sig, err := uc.classifyExternal(context.Background(), "a message the lexicon does not match")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sig.CrisisIndicators {
		t.Fatal("crisis verdict must set the indicator")
	}
	if len(sig.SafetyFlags) == 0 {
		t.Error("crisis signal must carry at least one safety flag")
	}

	// Locally matched flags are kept as-is.
	local := ruleSignal()
	local.CrisisIndicators = true
	local.SafetyFlags = []string{"hurt myself"}
	uc.emotionUC = &stubEmotionUC{sig: local}

	sig, err = uc.classifyExternal(context.Background(), "I want to hurt myself")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sig.SafetyFlags) != 1 || sig.SafetyFlags[0] != "hurt myself" {
		t.Errorf("safety flags: got %v, want the local match only", sig.SafetyFlags)
	}
}
