package repository

import (
	"context"

	"companion-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateMoodEntry(ctx context.Context, opt CreateMoodEntryOptions) (model.MoodEntry, error)
	ListMoodEntries(ctx context.Context, opt ListMoodEntriesOptions) ([]model.MoodEntry, error)
}
