package orchestrator

import (
	"context"

	"companion-srv/internal/emotion"
	"companion-srv/internal/safety"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessMessage runs the full classify/evaluate/compose pipeline.
	// It never returns an error for user-facing messages; total
	// failure degrades to the emergency result.
	ProcessMessage(ctx context.Context, input ProcessInput) (ProcessOutput, error)

	// Classify runs the trusted rule-based classifier only, for
	// callers that need emotion tagging without a composed reply.
	Classify(ctx context.Context, text string) (emotion.Signal, error)

	// Evaluate classifies and assesses safety in one pass.
	Evaluate(ctx context.Context, text string) (emotion.Signal, safety.Assessment, error)

	// Stats returns the per-backend health snapshot.
	Stats() Stats
}
