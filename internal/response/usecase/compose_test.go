package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
	"companion-srv/pkg/gemini"
	"companion-srv/pkg/log"
)

type stubGemini struct {
	reply     string
	err       error
	available bool
	calls     int
}

func (s *stubGemini) Generate(ctx context.Context, prompt string) (string, error) {
	return s.GenerateContent(ctx, gemini.GenerateInput{Prompt: prompt})
}

func (s *stubGemini) GenerateContent(ctx context.Context, input gemini.GenerateInput) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubGemini) IsAvailable() bool { return s.available }

func seededUseCase(g gemini.IGemini) response.UseCase {
	return New(g, log.NewNoop(), rand.New(rand.NewSource(1)))
}

func stressedInput(backend string) response.ComposeInput {
	sig := emotion.NeutralSignal(emotion.SourceRuleBased)
	sig.PrimaryEmotion = emotion.EmotionStressed
	sig.Intensity = emotion.IntensityMedium
	return response.ComposeInput{
		Text:    "work is piling up",
		Signal:  sig,
		Safety:  safety.Assessment{Level: safety.LevelNormal},
		Backend: backend,
	}
}

func TestComposeCrisisShortCircuit(t *testing.T) {
	g := &stubGemini{available: true, reply: "should never be used"}
	uc := seededUseCase(g)

	input := stressedInput(model.BackendExternalLLM)
	input.Safety = safety.Assessment{Level: safety.LevelCrisis, NeedsIntervention: true}

	out, err := uc.Compose(context.Background(), input)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if g.calls != 0 {
		t.Errorf("generator calls: got %d, want 0", g.calls)
	}
	if out.Result.ResponseType != response.TypeCrisisIntervention {
		t.Errorf("response type: got %q", out.Result.ResponseType)
	}
	if !out.Result.SafetyIntervention {
		t.Error("safety intervention should be set")
	}
	if len(out.Result.Resources) == 0 {
		t.Fatal("crisis resources missing")
	}
	foundCrisisLine := false
	for _, res := range out.Result.Resources {
		if strings.Contains(res.Name, "Crisis") || strings.Contains(res.Contact, "741741") {
			foundCrisisLine = true
		}
	}
	if !foundCrisisLine {
		t.Errorf("crisis resource set expected, got %+v", out.Result.Resources)
	}
}

func TestComposeTemplate(t *testing.T) {
	uc := seededUseCase(&stubGemini{})

	out, err := uc.Compose(context.Background(), stressedInput(model.BackendRuleBased))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if out.Degraded {
		t.Error("template path should not be degraded")
	}
	if out.Result.ResponseType != response.TypeSupportive {
		t.Errorf("response type: got %q", out.Result.ResponseType)
	}
	if out.Result.Message == "" {
		t.Error("message should not be empty")
	}
	if len(out.Result.CopingSuggestions) != 2 {
		t.Errorf("coping suggestions: got %d, want 2 at medium intensity", len(out.Result.CopingSuggestions))
	}
	if len(out.Result.Resources) == 0 {
		t.Error("resources should not be empty")
	}
}

func TestComposeTemplateHighIntensityExtraCoping(t *testing.T) {
	uc := seededUseCase(&stubGemini{})

	input := stressedInput(model.BackendRuleBased)
	input.Signal.Intensity = emotion.IntensityHigh

	out, err := uc.Compose(context.Background(), input)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(out.Result.CopingSuggestions) != 3 {
		t.Errorf("coping suggestions: got %d, want 3 at high intensity", len(out.Result.CopingSuggestions))
	}
}

func TestComposeExternal(t *testing.T) {
	t.Run("success uses generated text", func(t *testing.T) {
		g := &stubGemini{available: true, reply: "That sounds like a heavy week, and it makes sense you feel stretched thin."}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendExternalLLM))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if out.Degraded {
			t.Error("should not be degraded")
		}
		if out.Result.Message != g.reply {
			t.Errorf("message: got %q", out.Result.Message)
		}
		if out.Result.ResponseType != response.TypeAISupportive {
			t.Errorf("response type: got %q", out.Result.ResponseType)
		}
		if out.Result.Source != emotion.SourceExternal {
			t.Errorf("source: got %q", out.Result.Source)
		}
	})

	t.Run("long reply is cut at the word budget", func(t *testing.T) {
		g := &stubGemini{available: true, reply: strings.Repeat("word ", response.MaxResponseWords+50)}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendExternalLLM))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		words := strings.Fields(out.Result.Message)
		if len(words) != response.MaxResponseWords {
			t.Errorf("words: got %d, want %d", len(words), response.MaxResponseWords)
		}
		if !strings.HasSuffix(out.Result.Message, "...") {
			t.Error("truncated message should end with ellipsis")
		}
	})

	t.Run("generator failure degrades to template", func(t *testing.T) {
		g := &stubGemini{err: errors.New("quota exceeded")}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendExternalLLM))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if !out.Degraded {
			t.Fatal("should report degradation")
		}
		if out.DegradedErr == nil {
			t.Error("degraded error should carry the cause")
		}
		if out.Result.ResponseType != response.TypeTemplateFallback {
			t.Errorf("response type: got %q", out.Result.ResponseType)
		}
		if out.Result.Source != emotion.SourceFallback {
			t.Errorf("source: got %q", out.Result.Source)
		}
		if out.Result.Message == "" {
			t.Error("fallback message should not be empty")
		}
	})
}

func TestComposeHybrid(t *testing.T) {
	t.Run("upgrades message and merges coping", func(t *testing.T) {
		g := &stubGemini{available: true, reply: "It sounds like there is a lot on your plate right now, and that is genuinely hard."}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendHybrid))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if out.Result.Message != g.reply {
			t.Errorf("message: got %q", out.Result.Message)
		}
		if out.Result.ResponseType != response.TypeHybridSupportive {
			t.Errorf("response type: got %q", out.Result.ResponseType)
		}
		if len(out.Result.CopingSuggestions) == 0 || len(out.Result.CopingSuggestions) > response.MaxCopingSuggestions {
			t.Errorf("coping suggestions: got %d", len(out.Result.CopingSuggestions))
		}
		seen := map[string]bool{}
		for _, s := range out.Result.CopingSuggestions {
			if seen[s] {
				t.Errorf("duplicate suggestion %q", s)
			}
			seen[s] = true
		}
	})

	t.Run("dismissive reply falls back to baseline text", func(t *testing.T) {
		g := &stubGemini{available: true, reply: "Honestly you should just relax, and everything will sort itself out eventually."}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendHybrid))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if strings.Contains(strings.ToLower(out.Result.Message), "just relax") {
			t.Errorf("dismissive text served: %q", out.Result.Message)
		}
		if out.Result.ResponseType != response.TypeHybridSupportive {
			t.Errorf("response type: got %q", out.Result.ResponseType)
		}
	})

	t.Run("too-short reply falls back to baseline text", func(t *testing.T) {
		g := &stubGemini{available: true, reply: "ok."}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendHybrid))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if out.Result.Message == "ok." {
			t.Error("short external reply should be rejected")
		}
	})

	t.Run("generator failure serves baseline as degraded", func(t *testing.T) {
		g := &stubGemini{err: errors.New("timeout")}
		uc := seededUseCase(g)

		out, err := uc.Compose(context.Background(), stressedInput(model.BackendHybrid))
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if !out.Degraded {
			t.Fatal("should report degradation")
		}
		if out.Result.ResponseType != response.TypeTemplateFallback {
			t.Errorf("response type: got %q", out.Result.ResponseType)
		}
	})
}

func TestComposeUnknownBackend(t *testing.T) {
	uc := seededUseCase(&stubGemini{})

	_, err := uc.Compose(context.Background(), stressedInput("quantum"))
	if !errors.Is(err, response.ErrUnknownBackend) {
		t.Errorf("got %v, want ErrUnknownBackend", err)
	}
}
