package emotion

// Emotion categories. The order of the lexicon table, not this list,
// decides ties during primary selection.
const (
	EmotionStressed    = "stressed"
	EmotionAnxious     = "anxious"
	EmotionSad         = "sad"
	EmotionOverwhelmed = "overwhelmed"
	EmotionAngry       = "angry"
	EmotionExcited     = "excited"
	EmotionPositive    = "positive"
	EmotionNeutral     = "neutral"
	EmotionConfused    = "confused"
	EmotionGrateful    = "grateful"
	EmotionCrisis      = "crisis"
)

// Intensity levels
const (
	IntensityLow     = "low"
	IntensityMedium  = "medium"
	IntensityHigh    = "high"
	IntensityExtreme = "extreme"
)

// Signal sources
const (
	SourceRuleBased = "rule_based"
	SourceExternal  = "external"
	SourceHybrid    = "hybrid"
	SourceFallback  = "fallback"
)

// Scoring constants.
const (
	// PhraseWeightFactor boosts regex phrase matches over plain keywords.
	PhraseWeightFactor = 1.5
	// IntensifierFactor multiplies a category score when one of its
	// intensifier words appears anywhere in the text.
	IntensifierFactor = 1.3
	// PrimaryScoreFloor is the minimum weighted score for a category to
	// become the primary emotion; below it the signal is neutral.
	PrimaryScoreFloor = 0.3
	// SecondaryScoreFloor is the minimum raw score for a category to be
	// reported as a secondary emotion.
	SecondaryScoreFloor = 0.2
	// SecondaryScoreCap caps normalized secondary scores.
	SecondaryScoreCap = 0.9
	// MaxSecondaryEmotions limits the secondary list.
	MaxSecondaryEmotions = 3
	// MaxMatchedKeywords limits the explainability keyword list.
	MaxMatchedKeywords = 5
	// ConfidenceWordTarget is the word count at which the length factor
	// stops discounting confidence.
	ConfidenceWordTarget = 10
	// SentimentBoostThreshold is the compound magnitude below which
	// sentiment does not reweight category scores.
	SentimentBoostThreshold = 0.1
)

// ClassifyInput is the input for Classify.
type ClassifyInput struct {
	Text string
}

// ScoredEmotion is a secondary emotion with its normalized score.
type ScoredEmotion struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// Signal is the result of classifying a single message. Immutable once
// produced.
type Signal struct {
	PrimaryEmotion    string          `json:"primary_emotion"`
	Confidence        float64         `json:"confidence"`
	SecondaryEmotions []ScoredEmotion `json:"secondary_emotions"`
	SentimentScore    float64         `json:"sentiment_score"`
	Intensity         string          `json:"intensity"`
	MatchedKeywords   []string        `json:"matched_keywords"`
	CrisisIndicators  bool            `json:"crisis_indicators"`
	SafetyFlags       []string        `json:"safety_flags"`
	Source            string          `json:"source"`
}

// NeutralSignal returns the zero-confidence signal used for empty input
// and last-resort fallbacks.
func NeutralSignal(source string) Signal {
	return Signal{
		PrimaryEmotion:    EmotionNeutral,
		Confidence:        0,
		SecondaryEmotions: []ScoredEmotion{},
		SentimentScore:    0,
		Intensity:         IntensityLow,
		MatchedKeywords:   []string{},
		SafetyFlags:       []string{},
		Source:            source,
	}
}
