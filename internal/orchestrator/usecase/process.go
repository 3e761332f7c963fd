package usecase

import (
	"context"
	"fmt"
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
)

// emergencyMessages are served when the selected backend and its
// fallback both fail. They must not depend on any runtime service.
var emergencyMessages = []string{
	"I'm having some technical difficulties right now, but I want you to know that I'm here for you.",
	"I'm experiencing some issues, but your feelings and experiences are still valid and important.",
	"While I'm having some technical problems, please know that reaching out was the right thing to do.",
	"I'm having trouble processing right now, but if you're in crisis, please contact 988 for immediate support.",
}

// ProcessMessage runs the full pipeline: select a backend, classify,
// evaluate safety on the trusted local path, compose a reply. A failed
// backend gets one fallback attempt; after that the caller receives
// the emergency result, never an error.
func (uc *implUseCase) ProcessMessage(ctx context.Context, input orchestrator.ProcessInput) (orchestrator.ProcessOutput, error) {
	start := time.Now()
	servicesUsed := []string{}
	fallbacksTriggered := []string{}

	selected := uc.selectBackend(input.PreferredBackend)
	servicesUsed = append(servicesUsed, selected)

	sig, assessment, out, err := uc.attempt(ctx, selected, input.Text)
	if err == nil {
		elapsed := time.Since(start)
		if out.Degraded {
			// The composer already served the template baseline, so the
			// user saw no error, but the selected backend did fail.
			uc.l.Warnf(ctx, "orchestrator.usecase.ProcessMessage: %s degraded to %s: %v", selected, model.BackendRuleBased, out.DegradedErr)
			uc.health.RecordFailure(selected, out.DegradedErr)
			uc.health.RecordSuccess(model.BackendRuleBased, elapsed)
			servicesUsed = append(servicesUsed, model.BackendRuleBased)
			fallbacksTriggered = append(fallbacksTriggered, selected+"_to_"+model.BackendRuleBased)
		} else {
			uc.health.RecordSuccess(selected, elapsed)
		}
		return orchestrator.ProcessOutput{
			Emotion:            sig,
			Safety:             assessment,
			Response:           out.Result,
			ServicesUsed:       servicesUsed,
			FallbacksTriggered: fallbacksTriggered,
			TimingMs:           elapsed.Milliseconds(),
		}, nil
	}

	uc.l.Errorf(ctx, "orchestrator.usecase.ProcessMessage: %s failed: %v", selected, err)
	uc.health.RecordFailure(selected, err)

	fallback := uc.fallbackFor(selected)
	if fallback != selected {
		fallbacksTriggered = append(fallbacksTriggered, selected+"_to_"+fallback)
		servicesUsed = append(servicesUsed, fallback)

		sig, assessment, out, fbErr := uc.attempt(ctx, fallback, input.Text)
		if fbErr == nil {
			elapsed := time.Since(start)
			uc.health.RecordSuccess(fallback, elapsed)
			return orchestrator.ProcessOutput{
				Emotion:            sig,
				Safety:             assessment,
				Response:           out.Result,
				ServicesUsed:       servicesUsed,
				FallbacksTriggered: fallbacksTriggered,
				TimingMs:           elapsed.Milliseconds(),
			}, nil
		}

		uc.l.Errorf(ctx, "orchestrator.usecase.ProcessMessage: fallback %s failed: %v", fallback, fbErr)
		uc.health.RecordFailure(fallback, fbErr)
	}

	return uc.emergencyResult(servicesUsed, fallbacksTriggered, time.Since(start)), nil
}

// attempt classifies, evaluates and composes on one backend. Safety
// always runs on the local rule path regardless of backend.
func (uc *implUseCase) attempt(ctx context.Context, backend, text string) (emotion.Signal, safety.Assessment, response.ComposeOutput, error) {
	sig, err := uc.classifyFor(ctx, backend, text)
	if err != nil {
		return emotion.Signal{}, safety.Assessment{}, response.ComposeOutput{}, err
	}

	assessment := uc.safetyUC.Evaluate(text, sig)

	out, err := uc.responseUC.Compose(ctx, response.ComposeInput{
		Text:    text,
		Signal:  sig,
		Safety:  assessment,
		Backend: backend,
	})
	if err != nil {
		return emotion.Signal{}, safety.Assessment{}, response.ComposeOutput{}, err
	}

	return sig, assessment, out, nil
}

// classifyFor routes classification to the backend's method.
func (uc *implUseCase) classifyFor(ctx context.Context, backend, text string) (emotion.Signal, error) {
	switch backend {
	case model.BackendRuleBased:
		return uc.emotionUC.Classify(ctx, emotion.ClassifyInput{Text: text})
	case model.BackendExternalLLM:
		return uc.classifyExternal(ctx, text)
	case model.BackendHybrid:
		return uc.classifyHybrid(ctx, text)
	default:
		return emotion.Signal{}, fmt.Errorf("%w: %s", orchestrator.ErrBackendUnavailable, backend)
	}
}

// emergencyResult is the hard-coded last resort. It carries the crisis
// text line so a user in trouble still gets a real contact.
func (uc *implUseCase) emergencyResult(servicesUsed, fallbacksTriggered []string, elapsed time.Duration) orchestrator.ProcessOutput {
	fallbacksTriggered = append(fallbacksTriggered, "emergency_fallback")

	sig := emotion.NeutralSignal(emotion.SourceFallback)

	return orchestrator.ProcessOutput{
		Emotion: sig,
		Safety: safety.Assessment{
			Level: safety.LevelNormal,
		},
		Response: response.Result{
			Message:      uc.pick(emergencyMessages),
			ResponseType: response.TypeEmergencyFallback,
			CopingSuggestions: []string{
				"Take deep breaths",
				"Reach out to someone you trust",
			},
			Resources: []response.Resource{
				{
					Name:        "Crisis Text Line",
					Contact:     "Text HOME to 741741",
					Description: "24/7 crisis support",
				},
			},
			FollowUpQuestions:  []string{"Are you in a safe place right now?"},
			SafetyIntervention: false,
			Source:             emotion.SourceFallback,
		},
		ServicesUsed:       servicesUsed,
		FallbacksTriggered: fallbacksTriggered,
		TimingMs:           elapsed.Milliseconds(),
	}
}

// Classify runs the trusted rule-based classifier only.
func (uc *implUseCase) Classify(ctx context.Context, text string) (emotion.Signal, error) {
	sig, err := uc.emotionUC.Classify(ctx, emotion.ClassifyInput{Text: text})
	if err != nil {
		uc.l.Errorf(ctx, "orchestrator.usecase.Classify: classify failed: %v", err)
		return emotion.Signal{}, err
	}
	return sig, nil
}

// Evaluate classifies and assesses safety in one pass.
func (uc *implUseCase) Evaluate(ctx context.Context, text string) (emotion.Signal, safety.Assessment, error) {
	sig, err := uc.Classify(ctx, text)
	if err != nil {
		return emotion.Signal{}, safety.Assessment{}, err
	}
	return sig, uc.safetyUC.Evaluate(text, sig), nil
}

// Stats builds the aggregate health snapshot.
func (uc *implUseCase) Stats() orchestrator.Stats {
	backends := uc.health.Snapshot()

	overall := orchestrator.StatusHealthy
	for _, stats := range backends {
		if stats.Status == orchestrator.StatusUnavailable {
			overall = orchestrator.StatusDegraded
			break
		}
	}

	return orchestrator.Stats{
		Timestamp:     time.Now(),
		OverallStatus: overall,
		Backends:      backends,
	}
}
