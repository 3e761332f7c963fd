package model

// Coping tool difficulty levels
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// GuidedStep is one timed step of an interactive coping session.
type GuidedStep struct {
	Step            int    `json:"step"`
	Action          string `json:"action"`
	DurationSeconds int    `json:"duration_seconds"`
	Instruction     string `json:"instruction"`
}

// CopingTool represents a guided self-help exercise from the catalog.
type CopingTool struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            string       `json:"type"`
	Description     string       `json:"description"`
	TargetEmotions  []string     `json:"target_emotions"`
	DurationMinutes int          `json:"duration_minutes"`
	Difficulty      string       `json:"difficulty"`
	Instructions    []string     `json:"instructions"`
	Benefits        []string     `json:"benefits"`
	Requirements    []string     `json:"requirements"`
	Interactive     bool         `json:"interactive"`
	GuidedSteps     []GuidedStep `json:"guided_steps,omitempty"`
}
