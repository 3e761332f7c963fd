package repository

import "time"

type CreateMoodEntryOptions struct {
	UserID    string
	Mood      string
	Intensity int
	Note      string
	Emotion   string
	Sentiment float64
}

type ListMoodEntriesOptions struct {
	UserID string
	Since  time.Time
	Limit  int
}
