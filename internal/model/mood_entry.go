package model

import "time"

// MoodEntry represents a self-reported mood check-in. Emotion and
// Sentiment are filled from classifying the note when one is given.
type MoodEntry struct {
	ID        string
	UserID    string
	Mood      string
	Intensity int // 1..10
	Note      string
	Emotion   string
	Sentiment float64
	CreatedAt time.Time
}
