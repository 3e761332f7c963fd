package mood

import (
	"context"

	"companion-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// LogMood records a mood check-in. When the input carries a note,
	// the note is classified and the entry is annotated with the
	// detected emotion and sentiment.
	LogMood(ctx context.Context, sc model.Scope, input LogMoodInput) (EntryOutput, error)

	// ListEntries returns the caller's mood history, newest first.
	ListEntries(ctx context.Context, sc model.Scope, input ListEntriesInput) ([]EntryOutput, error)

	// Summary aggregates the caller's entries over a day window.
	Summary(ctx context.Context, sc model.Scope, input SummaryInput) (SummaryOutput, error)
}
