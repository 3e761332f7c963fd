package model

import "time"

// Conversation status constants
const (
	ConversationStatusActive   = "ACTIVE"
	ConversationStatusArchived = "ARCHIVED"
)

// Conversation represents a support chat session
type Conversation struct {
	ID            string
	UserID        string
	Title         string
	Status        string // ACTIVE | ARCHIVED
	MessageCount  int
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
