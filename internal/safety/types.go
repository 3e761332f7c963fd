package safety

// Safety levels. Crisis strictly dominates high dominates normal.
const (
	LevelNormal = "normal"
	LevelHigh   = "high"
	LevelCrisis = "crisis"
)

// Evaluation thresholds.
const (
	// VeryNegativeSentiment marks the compound score below which a
	// message is treated as high distress on tone alone.
	VeryNegativeSentiment = -0.8
)

// TriggeringFactors records which rule produced the assessment level.
type TriggeringFactors struct {
	CrisisKeywordsFound           bool `json:"crisis_keywords_found"`
	HighDistressEmotionIntensity  bool `json:"high_distress_emotion_intensity"`
	VeryNegativeSentimentDetected bool `json:"very_negative_sentiment"`
}

// Assessment is the derived safety verdict for one message. Computed
// fresh per message, never mutated.
type Assessment struct {
	Level             string            `json:"level"`
	NeedsIntervention bool              `json:"needs_intervention"`
	TriggeringFactors TriggeringFactors `json:"triggering_factors"`
}
