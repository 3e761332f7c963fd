package kafka

// Producer topics
const (
	TopicMessageProcessed = "companion.message.processed"
)

// Event types
const (
	EventTypeMessageProcessed = "message.processed"
)
