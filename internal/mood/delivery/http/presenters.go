package http

import (
	"time"

	"companion-srv/internal/mood"
)

type logMoodReq struct {
	Mood      string `json:"mood" binding:"required"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=10"`
	Note      string `json:"note,omitempty"`
}

func (r logMoodReq) toInput() mood.LogMoodInput {
	return mood.LogMoodInput{
		Mood:      r.Mood,
		Intensity: r.Intensity,
		Note:      r.Note,
	}
}

type listEntriesReq struct {
	Days  int
	Limit int
}

func (r listEntriesReq) toInput() mood.ListEntriesInput {
	return mood.ListEntriesInput{
		Days:  r.Days,
		Limit: r.Limit,
	}
}

type summaryReq struct {
	Days int
}

func (r summaryReq) toInput() mood.SummaryInput {
	return mood.SummaryInput{
		Days: r.Days,
	}
}

type entryResp struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Sentiment float64   `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *handler) newEntryResp(o mood.EntryOutput) entryResp {
	return entryResp{
		ID:        o.ID,
		Mood:      o.Mood,
		Intensity: o.Intensity,
		Note:      o.Note,
		Emotion:   o.Emotion,
		Sentiment: o.Sentiment,
		CreatedAt: o.CreatedAt,
	}
}

func (h *handler) newListEntriesResp(outputs []mood.EntryOutput) []entryResp {
	resp := make([]entryResp, 0, len(outputs))
	for _, o := range outputs {
		resp = append(resp, h.newEntryResp(o))
	}
	return resp
}

type summaryResp struct {
	Days             int            `json:"days"`
	TotalEntries     int            `json:"total_entries"`
	MoodCounts       map[string]int `json:"mood_counts"`
	MostCommonMood   string         `json:"most_common_mood,omitempty"`
	AverageIntensity float64        `json:"average_intensity"`
	AverageSentiment float64        `json:"average_sentiment"`
}

func (h *handler) newSummaryResp(o mood.SummaryOutput) summaryResp {
	return summaryResp{
		Days:             o.Days,
		TotalEntries:     o.TotalEntries,
		MoodCounts:       o.MoodCounts,
		MostCommonMood:   o.MostCommonMood,
		AverageIntensity: o.AverageIntensity,
		AverageSentiment: o.AverageSentiment,
	}
}
