package usecase

import (
	"context"
	"encoding/json"

	"companion-srv/internal/chat"
	"companion-srv/internal/chat/repository"
	"companion-srv/internal/model"
)

// GetConversation returns a conversation and its messages.
func (uc *implUseCase) GetConversation(ctx context.Context, sc model.Scope, input chat.GetConversationInput) (chat.ConversationOutput, error) {
	conv, err := uc.repo.GetConversationByID(ctx, input.ConversationID)
	if err != nil {
		return chat.ConversationOutput{}, chat.ErrConversationNotFound
	}
	if conv.UserID != sc.UserID {
		return chat.ConversationOutput{}, chat.ErrConversationNotFound
	}

	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		ConversationID: conv.ID,
		OrderASC:       true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.GetConversation: ListMessages failed: %v", err)
	}

	return uc.toConversationOutput(conv, msgs), nil
}

// ListConversations lists the caller's conversations without messages.
func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope, input chat.ListConversationsInput) ([]chat.ConversationOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = chat.DefaultListLimit
	}

	convos, err := uc.repo.ListConversations(ctx, repository.ListConversationsOptions{
		UserID: sc.UserID,
		Status: input.Status,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ListConversations: ListConversations failed: %v", err)
		return nil, err
	}

	results := make([]chat.ConversationOutput, len(convos))
	for i, c := range convos {
		results[i] = uc.toConversationOutput(c, nil)
	}
	return results, nil
}

// ArchiveConversation closes a conversation for new messages.
func (uc *implUseCase) ArchiveConversation(ctx context.Context, sc model.Scope, input chat.ArchiveConversationInput) error {
	conv, err := uc.repo.GetConversationByID(ctx, input.ConversationID)
	if err != nil {
		return chat.ErrConversationNotFound
	}
	if conv.UserID != sc.UserID {
		return chat.ErrConversationNotFound
	}
	if conv.Status == model.ConversationStatusArchived {
		return nil
	}

	if err := uc.repo.ArchiveConversation(ctx, conv.ID); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ArchiveConversation: ArchiveConversation failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) toConversationOutput(conv model.Conversation, msgs []model.Message) chat.ConversationOutput {
	output := chat.ConversationOutput{
		ID:            conv.ID,
		UserID:        conv.UserID,
		Title:         conv.Title,
		Status:        conv.Status,
		MessageCount:  conv.MessageCount,
		LastMessageAt: conv.LastMessageAt,
		CreatedAt:     conv.CreatedAt,
	}
	for _, m := range msgs {
		output.Messages = append(output.Messages, uc.toMessageOutput(m))
	}
	return output
}

func (uc *implUseCase) toMessageOutput(m model.Message) chat.MessageOutput {
	output := chat.MessageOutput{
		ID:          m.ID,
		Role:        m.Role,
		Content:     m.Content,
		Emotion:     m.Emotion,
		SafetyLevel: m.SafetyLevel,
		Backend:     m.Backend,
		CreatedAt:   m.CreatedAt,
	}

	if len(m.Metadata) > 0 && string(m.Metadata) != "null" {
		var meta chat.MessageMeta
		if err := json.Unmarshal(m.Metadata, &meta); err == nil {
			output.Metadata = &meta
		}
	}

	return output
}

func (uc *implUseCase) generateTitle(message string) string {
	if len(message) <= chat.MaxTitleLength {
		return message
	}
	return message[:chat.MaxTitleLength] + "..."
}
