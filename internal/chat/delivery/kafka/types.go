package kafka

import "time"

// MessageProcessedMessage is the wire DTO for message.processed
// events. It deliberately carries no message text.
type MessageProcessedMessage struct {
	EventType        string    `json:"event_type"`
	ConversationID   string    `json:"conversation_id"`
	UserHash         string    `json:"user_hash"`
	Emotion          string    `json:"emotion"`
	SafetyLevel      string    `json:"safety_level"`
	CrisisDetected   bool      `json:"crisis_detected"`
	Backend          string    `json:"backend"`
	ResponseType     string    `json:"response_type"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	OccurredAt       time.Time `json:"occurred_at"`
}
