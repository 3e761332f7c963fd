package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
	"companion-srv/pkg/gemini"
	"companion-srv/pkg/log"
)

type stubEmotionUC struct {
	sig emotion.Signal
	err error
}

func (s *stubEmotionUC) Classify(ctx context.Context, input emotion.ClassifyInput) (emotion.Signal, error) {
	if s.err != nil {
		return emotion.Signal{}, s.err
	}
	return s.sig, nil
}

func (s *stubEmotionUC) DetectCrisis(text string) (bool, []string) {
	return s.sig.CrisisIndicators, s.sig.SafetyFlags
}

type stubSafetyUC struct {
	assessment safety.Assessment
}

func (s *stubSafetyUC) Evaluate(text string, sig emotion.Signal) safety.Assessment {
	return s.assessment
}

type stubResponseUC struct {
	compose func(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error)
}

func (s *stubResponseUC) Compose(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error) {
	return s.compose(ctx, input)
}

type stubGemini struct {
	available bool
	reply     string
	err       error
}

func (s *stubGemini) Generate(ctx context.Context, prompt string) (string, error) {
	return s.GenerateContent(ctx, gemini.GenerateInput{Prompt: prompt})
}

func (s *stubGemini) GenerateContent(ctx context.Context, input gemini.GenerateInput) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubGemini) IsAvailable() bool {
	return s.available
}

const verdictJSON = `{"primary_emotion":"sad","confidence":0.9,"secondary_emotions":["anxious"],"intensity":"high","crisis_indicators":false}`

func okCompose(result response.Result) func(context.Context, response.ComposeInput) (response.ComposeOutput, error) {
	return func(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error) {
		return response.ComposeOutput{Result: result}, nil
	}
}

func ruleSignal() emotion.Signal {
	sig := emotion.NeutralSignal(emotion.SourceRuleBased)
	sig.PrimaryEmotion = emotion.EmotionStressed
	sig.Confidence = 0.6
	return sig
}

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("rule based happy path", func(t *testing.T) {
		health := orchestrator.NewHealthTracker()
		uc := New(
			&stubEmotionUC{sig: ruleSignal()},
			&stubSafetyUC{assessment: safety.Assessment{Level: safety.LevelNormal}},
			&stubResponseUC{compose: okCompose(response.Result{Message: "take a breath", ResponseType: response.TypeSupportive})},
			&stubGemini{available: false},
			health,
			model.BackendRuleBased,
			log.NewNoop(),
			rand.New(rand.NewSource(1)),
		)

		out, err := uc.ProcessMessage(ctx, orchestrator.ProcessInput{Text: "work is a lot"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response.Message != "take a breath" {
			t.Errorf("message: got %q", out.Response.Message)
		}
		if len(out.ServicesUsed) != 1 || out.ServicesUsed[0] != model.BackendRuleBased {
			t.Errorf("services used: got %v", out.ServicesUsed)
		}
		if len(out.FallbacksTriggered) != 0 {
			t.Errorf("fallbacks: got %v, want none", out.FallbacksTriggered)
		}
		if health.Snapshot()[model.BackendRuleBased].SuccessCount != 1 {
			t.Error("success not recorded for rule_based")
		}
	})

	t.Run("failed backend falls back once", func(t *testing.T) {
		health := orchestrator.NewHealthTracker()
		responseUC := &stubResponseUC{compose: func(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error) {
			return response.ComposeOutput{Result: response.Result{Message: "still here", ResponseType: response.TypeHybridSupportive}}, nil
		}}
		// Generator errors, so external classification fails and the
		// hybrid fallback serves the rule signal instead.
		uc := New(
			&stubEmotionUC{sig: ruleSignal()},
			&stubSafetyUC{},
			responseUC,
			&stubGemini{available: true, err: errors.New("deadline exceeded")},
			health,
			model.BackendRuleBased,
			log.NewNoop(),
			rand.New(rand.NewSource(1)),
		)

		out, err := uc.ProcessMessage(ctx, orchestrator.ProcessInput{
			Text:             "rough day",
			PreferredBackend: model.BackendExternalLLM,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{model.BackendExternalLLM, model.BackendHybrid}; strings.Join(out.ServicesUsed, ",") != strings.Join(want, ",") {
			t.Errorf("services used: got %v, want %v", out.ServicesUsed, want)
		}
		if len(out.FallbacksTriggered) != 1 || out.FallbacksTriggered[0] != "external_llm_to_hybrid" {
			t.Errorf("fallbacks: got %v", out.FallbacksTriggered)
		}
		if health.Snapshot()[model.BackendExternalLLM].ErrorCount != 1 {
			t.Error("failure not recorded for external_llm")
		}
		if health.Snapshot()[model.BackendHybrid].SuccessCount != 1 {
			t.Error("success not recorded for hybrid fallback")
		}
	})

	t.Run("total failure serves emergency result", func(t *testing.T) {
		health := orchestrator.NewHealthTracker()
		uc := New(
			&stubEmotionUC{err: errors.New("lexicon corrupted")},
			&stubSafetyUC{},
			&stubResponseUC{compose: okCompose(response.Result{})},
			&stubGemini{available: false},
			health,
			model.BackendRuleBased,
			log.NewNoop(),
			rand.New(rand.NewSource(1)),
		)

		out, err := uc.ProcessMessage(ctx, orchestrator.ProcessInput{Text: "hello"})
		if err != nil {
			t.Fatalf("emergency path must not return an error, got %v", err)
		}
		if out.Response.ResponseType != response.TypeEmergencyFallback {
			t.Errorf("response type: got %s, want %s", out.Response.ResponseType, response.TypeEmergencyFallback)
		}
		if out.Response.Message == "" {
			t.Error("emergency message empty")
		}
		if len(out.Response.Resources) != 1 || out.Response.Resources[0].Name != "Crisis Text Line" {
			t.Errorf("resources: got %v, want Crisis Text Line", out.Response.Resources)
		}
		last := out.FallbacksTriggered[len(out.FallbacksTriggered)-1]
		if last != "emergency_fallback" {
			t.Errorf("last fallback marker: got %s, want emergency_fallback", last)
		}
		if out.Emotion.PrimaryEmotion != emotion.EmotionNeutral || out.Emotion.Source != emotion.SourceFallback {
			t.Errorf("emergency signal: got %s/%s", out.Emotion.PrimaryEmotion, out.Emotion.Source)
		}
	})

	t.Run("degraded compose counts as backend failure", func(t *testing.T) {
		health := orchestrator.NewHealthTracker()
		degradedErr := errors.New("generate timeout")
		responseUC := &stubResponseUC{compose: func(ctx context.Context, input response.ComposeInput) (response.ComposeOutput, error) {
			return response.ComposeOutput{
				Result:      response.Result{Message: "template reply", ResponseType: response.TypeTemplateFallback},
				Degraded:    true,
				DegradedErr: degradedErr,
			}, nil
		}}
		uc := New(
			&stubEmotionUC{sig: ruleSignal()},
			&stubSafetyUC{},
			responseUC,
			&stubGemini{available: true, reply: verdictJSON},
			health,
			model.BackendRuleBased,
			log.NewNoop(),
			rand.New(rand.NewSource(1)),
		)

		out, err := uc.ProcessMessage(ctx, orchestrator.ProcessInput{
			Text:             "rough day",
			PreferredBackend: model.BackendExternalLLM,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response.Message != "template reply" {
			t.Errorf("message: got %q", out.Response.Message)
		}
		if len(out.FallbacksTriggered) != 1 || out.FallbacksTriggered[0] != "external_llm_to_rule_based" {
			t.Errorf("fallbacks: got %v", out.FallbacksTriggered)
		}
		if health.Snapshot()[model.BackendExternalLLM].ErrorCount != 1 {
			t.Error("degradation not recorded as external_llm failure")
		}
		if health.Snapshot()[model.BackendRuleBased].SuccessCount != 1 {
			t.Error("template baseline success not recorded for rule_based")
		}
	})

	t.Run("open breaker steers selection away", func(t *testing.T) {
		health := orchestrator.NewHealthTracker()
		for i := 0; i < orchestrator.BreakerThreshold; i++ {
			health.RecordFailure(model.BackendExternalLLM, errors.New("boom"))
		}

		uc := New(
			&stubEmotionUC{sig: ruleSignal()},
			&stubSafetyUC{},
			&stubResponseUC{compose: okCompose(response.Result{Message: "ok"})},
			&stubGemini{available: true, reply: verdictJSON},
			health,
			model.BackendRuleBased,
			log.NewNoop(),
			rand.New(rand.NewSource(1)),
		)

		out, err := uc.ProcessMessage(ctx, orchestrator.ProcessInput{
			Text:             "hi",
			PreferredBackend: model.BackendExternalLLM,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ServicesUsed[0] != model.BackendRuleBased {
			t.Errorf("selected backend: got %s, want %s", out.ServicesUsed[0], model.BackendRuleBased)
		}
	})
}

func TestEvaluate(t *testing.T) {
	assessment := safety.Assessment{Level: safety.LevelHigh, NeedsIntervention: true}
	uc := New(
		&stubEmotionUC{sig: ruleSignal()},
		&stubSafetyUC{assessment: assessment},
		&stubResponseUC{compose: okCompose(response.Result{})},
		&stubGemini{},
		orchestrator.NewHealthTracker(),
		model.BackendRuleBased,
		log.NewNoop(),
		rand.New(rand.NewSource(1)),
	)

	sig, got, err := uc.Evaluate(context.Background(), "I can't take this anymore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.PrimaryEmotion != emotion.EmotionStressed {
		t.Errorf("primary emotion: got %s", sig.PrimaryEmotion)
	}
	if got.Level != safety.LevelHigh || !got.NeedsIntervention {
		t.Errorf("assessment: got %+v", got)
	}
}

func TestStats(t *testing.T) {
	health := orchestrator.NewHealthTracker()
	uc := New(
		&stubEmotionUC{sig: ruleSignal()},
		&stubSafetyUC{},
		&stubResponseUC{compose: okCompose(response.Result{})},
		&stubGemini{},
		health,
		model.BackendRuleBased,
		log.NewNoop(),
		rand.New(rand.NewSource(1)),
	)

	stats := uc.Stats()
	if stats.OverallStatus != orchestrator.StatusHealthy {
		t.Errorf("overall status: got %s, want %s", stats.OverallStatus, orchestrator.StatusHealthy)
	}

	health.RecordFailure(model.BackendExternalLLM, errors.New("down"))
	stats = uc.Stats()
	if stats.OverallStatus != orchestrator.StatusDegraded {
		t.Errorf("overall status with unavailable backend: got %s, want %s", stats.OverallStatus, orchestrator.StatusDegraded)
	}
	if len(stats.Backends) != len(model.Backends) {
		t.Errorf("backend count: got %d, want %d", len(stats.Backends), len(model.Backends))
	}
}
