package chat

import (
	"time"

	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
)

const (
	MinMessageLength   = 3
	MaxMessageLength   = 2000
	MaxHistoryMessages = 20
	MaxTitleLength     = 50
	DefaultListLimit   = 20
)

type ChatInput struct {
	ConversationID   string
	Message          string
	PreferredBackend string
}

type GetConversationInput struct {
	ConversationID string
}

type ListConversationsInput struct {
	Status string
	Limit  int
	Offset int
}

type ArchiveConversationInput struct {
	ConversationID string
}

type ChatOutput struct {
	ConversationID     string
	Message            string
	ResponseType       string
	CopingSuggestions  []string
	Resources          []response.Resource
	FollowUpQuestions  []string
	Emotion            emotion.Signal
	Safety             safety.Assessment
	ServicesUsed       []string
	FallbacksTriggered []string
	ProcessingTimeMs   int64
}

type ConversationOutput struct {
	ID            string
	UserID        string
	Title         string
	Status        string
	MessageCount  int
	Messages      []MessageOutput
	LastMessageAt *time.Time
	CreatedAt     time.Time
}

type MessageOutput struct {
	ID          string
	Role        string
	Content     string
	Emotion     string
	SafetyLevel string
	Backend     string
	Metadata    *MessageMeta
	CreatedAt   time.Time
}

// MessageMeta is the JSON metadata stored alongside assistant messages.
type MessageMeta struct {
	ResponseType       string              `json:"response_type,omitempty"`
	CopingSuggestions  []string            `json:"coping_suggestions,omitempty"`
	Resources          []response.Resource `json:"resources,omitempty"`
	FollowUpQuestions  []string            `json:"follow_up_questions,omitempty"`
	ServicesUsed       []string            `json:"services_used,omitempty"`
	FallbacksTriggered []string            `json:"fallbacks_triggered,omitempty"`
	ProcessingTimeMs   int64               `json:"processing_time_ms,omitempty"`
	Source             string              `json:"source,omitempty"`
	Confidence         float64             `json:"confidence,omitempty"`
	SentimentScore     float64             `json:"sentiment_score,omitempty"`
}

// MessageProcessedEvent is the anonymized analytics event published
// after each processed message. It must never carry message text.
type MessageProcessedEvent struct {
	ConversationID   string
	UserHash         string
	Emotion          string
	SafetyLevel      string
	CrisisDetected   bool
	Backend          string
	ResponseType     string
	ProcessingTimeMs int64
	OccurredAt       time.Time
}
