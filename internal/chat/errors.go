package chat

import "errors"

// Domain errors
var (
	// ErrConversationNotFound - conversation does not exist or belongs to another user
	ErrConversationNotFound = errors.New("chat: conversation not found")

	// ErrMessageTooShort - message shorter than MinMessageLength
	ErrMessageTooShort = errors.New("chat: message too short")

	// ErrMessageTooLong - message longer than MaxMessageLength
	ErrMessageTooLong = errors.New("chat: message too long")

	// ErrConversationArchived - conversation no longer accepts messages
	ErrConversationArchived = errors.New("chat: conversation is archived")
)
