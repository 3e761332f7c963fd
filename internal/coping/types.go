package coping

// Tool types
const (
	TypeBreathing   = "breathing"
	TypeGrounding   = "grounding"
	TypeMindfulness = "mindfulness"
	TypeJournaling  = "journaling"
	TypePhysical    = "physical"
	TypeCognitive   = "cognitive"
)

// EmotionGeneral marks tools that apply regardless of emotion.
const EmotionGeneral = "general"

const (
	// MaxRecommendations caps plain emotion recommendations.
	MaxRecommendations = 3
	// MaxPersonalizedRecommendations caps recommendations when the
	// caller supplied preference filters.
	MaxPersonalizedRecommendations = 5
)

type ListToolsInput struct {
	Type               string
	Emotion            string
	Difficulty         string
	MaxDurationMinutes int
}

type GetToolInput struct {
	ID string
}

type RecommendInput struct {
	Emotion            string
	PreferredTypes     []string
	Difficulty         string
	MaxDurationMinutes int
}
