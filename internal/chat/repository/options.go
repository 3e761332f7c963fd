package repository

import "encoding/json"

type CreateConversationOptions struct {
	UserID string
	Title  string
}

type ListConversationsOptions struct {
	UserID string
	Status string
	Limit  int
	Offset int
}

type UpdateLastMessageOptions struct {
	ConversationID string
	MessageCount   int
}

type CreateMessageOptions struct {
	ConversationID string
	Role           string
	Content        string
	Emotion        string
	SafetyLevel    string
	Backend        string
	Metadata       json.RawMessage
}

type ListMessagesOptions struct {
	ConversationID string
	Limit          int
	OrderASC       bool
}
