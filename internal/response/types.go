package response

import (
	"companion-srv/internal/emotion"
	"companion-srv/internal/safety"
)

// Response types
const (
	TypeSupportive         = "supportive"
	TypeCrisisIntervention = "crisis_intervention"
	TypeAISupportive       = "ai_supportive"
	TypeHybridSupportive   = "hybrid_supportive"
	TypeTemplateFallback   = "template_fallback"
	TypeEmergencyFallback  = "emergency_fallback"
)

// Composition constants
const (
	// MaxResponseWords is the reply word budget; longer external
	// replies are truncated at a word boundary.
	MaxResponseWords = 200
	// MinExternalMessageLen rejects suspiciously short external
	// replies in favor of the template baseline.
	MinExternalMessageLen = 20
	// HybridExternalCoping and HybridTemplateCoping bound how many
	// suggestions each side contributes to a hybrid merge.
	HybridExternalCoping = 2
	HybridTemplateCoping = 2
	// MaxCopingSuggestions caps the merged suggestion list.
	MaxCopingSuggestions = 3
)

// Resource is one entry from the support resource directory.
type Resource struct {
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}

// Result is a composed reply for one message.
type Result struct {
	Message            string     `json:"message"`
	ResponseType       string     `json:"response_type"`
	CopingSuggestions  []string   `json:"coping_suggestions"`
	Resources          []Resource `json:"resources"`
	FollowUpQuestions  []string   `json:"follow_up_questions"`
	SafetyIntervention bool       `json:"safety_intervention"`
	Source             string     `json:"source"`
}

// ComposeInput is the input for Compose.
type ComposeInput struct {
	Text    string
	Signal  emotion.Signal
	Safety  safety.Assessment
	Backend string // orchestrator backend identifier
}

// ComposeOutput wraps the result with degradation metadata so the
// orchestrator can record external-generator failures that were served
// transparently by the template path.
type ComposeOutput struct {
	Result      Result
	Degraded    bool
	DegradedErr error
}
