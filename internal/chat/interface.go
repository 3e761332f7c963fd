package chat

import (
	"context"

	"companion-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
	GetConversation(ctx context.Context, sc model.Scope, input GetConversationInput) (ConversationOutput, error)
	ListConversations(ctx context.Context, sc model.Scope, input ListConversationsInput) ([]ConversationOutput, error)
	ArchiveConversation(ctx context.Context, sc model.Scope, input ArchiveConversationInput) error
}

// Producer publishes chat analytics events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishMessageProcessed(ctx context.Context, event MessageProcessedEvent) error
}
