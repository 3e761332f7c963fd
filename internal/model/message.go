package model

import (
	"encoding/json"
	"time"
)

// Message role constants
const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
)

// Message represents a single message in a conversation.
// Assistant messages carry the emotion and safety metadata produced
// while composing the reply.
type Message struct {
	ID             string
	ConversationID string
	Role           string // "user" | "assistant"
	Content        string
	Emotion        string
	SafetyLevel    string
	Backend        string
	Metadata       json.RawMessage
	CreatedAt      time.Time
}
