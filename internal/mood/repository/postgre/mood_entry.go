package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"companion-srv/internal/model"
	"companion-srv/internal/mood/repository"

	"github.com/google/uuid"
)

// CreateMoodEntry inserts one mood check-in row.
func (r *implRepository) CreateMoodEntry(ctx context.Context, opt repository.CreateMoodEntryOptions) (model.MoodEntry, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO companion.mood_entries (id, user_id, mood, intensity, note, emotion, sentiment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, mood, intensity, note, emotion, sentiment, created_at
	`

	var entry model.MoodEntry
	var noteCol, emotionCol sql.NullString

	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.Mood, opt.Intensity,
		nullString(opt.Note), nullString(opt.Emotion), opt.Sentiment,
		now,
	).Scan(
		&entry.ID, &entry.UserID, &entry.Mood, &entry.Intensity,
		&noteCol, &emotionCol, &entry.Sentiment,
		&entry.CreatedAt,
	)
	if err != nil {
		return model.MoodEntry{}, fmt.Errorf("CreateMoodEntry: %w", err)
	}

	entry.Note = noteCol.String
	entry.Emotion = emotionCol.String

	return entry, nil
}

// ListMoodEntries lists a user's check-ins, newest first.
func (r *implRepository) ListMoodEntries(ctx context.Context, opt repository.ListMoodEntriesOptions) ([]model.MoodEntry, error) {
	query := `
		SELECT id, user_id, mood, intensity, note, emotion, sentiment, created_at
		FROM companion.mood_entries
		WHERE user_id = $1
	`
	args := []interface{}{opt.UserID}
	argIdx := 2

	if !opt.Since.IsZero() {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, opt.Since)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListMoodEntries: %w", err)
	}
	defer rows.Close()

	var entries []model.MoodEntry
	for rows.Next() {
		var entry model.MoodEntry
		var noteCol, emotionCol sql.NullString

		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Mood, &entry.Intensity,
			&noteCol, &emotionCol, &entry.Sentiment,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListMoodEntries scan: %w", err)
		}

		entry.Note = noteCol.String
		entry.Emotion = emotionCol.String
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
