package mood

import "time"

// Validation bounds
const (
	MinIntensity  = 1
	MaxIntensity  = 10
	MaxNoteLength = 500
)

// Window bounds for listing and summaries, in days.
const (
	DefaultWindowDays = 30
	MaxWindowDays     = 365
)

// LogMoodInput - payload for logging a mood check-in
type LogMoodInput struct {
	Mood      string
	Intensity int
	Note      string
}

// ListEntriesInput - filters for listing mood history
type ListEntriesInput struct {
	Days  int
	Limit int
}

// SummaryInput - window for the mood summary
type SummaryInput struct {
	Days int
}

// EntryOutput - a mood entry as returned to callers
type EntryOutput struct {
	ID        string
	Mood      string
	Intensity int
	Note      string
	Emotion   string
	Sentiment float64
	CreatedAt time.Time
}

// SummaryOutput - aggregated mood statistics over a window
type SummaryOutput struct {
	Days             int
	TotalEntries     int
	MoodCounts       map[string]int
	MostCommonMood   string
	AverageIntensity float64
	AverageSentiment float64
}
