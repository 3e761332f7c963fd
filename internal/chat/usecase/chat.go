package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"companion-srv/internal/chat"
	"companion-srv/internal/chat/repository"
	"companion-srv/internal/model"
	"companion-srv/internal/orchestrator"
)

// Chat - Main support pipeline
// Flow: validate → resolve/create conversation → orchestrate → persist both messages → publish event → return
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if err := uc.validateChatInput(input); err != nil {
		return chat.ChatOutput{}, err
	}

	conversation, err := uc.resolveConversation(ctx, sc, input)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	// The orchestrator owns backend selection and fallback; it always
	// returns a usable reply.
	processed, err := uc.orchUC.ProcessMessage(ctx, orchestrator.ProcessInput{
		Text:             input.Message,
		PreferredBackend: input.PreferredBackend,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Chat: ProcessMessage failed: %v", err)
		return chat.ChatOutput{}, fmt.Errorf("process message: %w", err)
	}

	uc.persistExchange(ctx, conversation, input.Message, processed)
	uc.publishProcessed(ctx, sc, conversation.ID, processed)

	return chat.ChatOutput{
		ConversationID:     conversation.ID,
		Message:            processed.Response.Message,
		ResponseType:       processed.Response.ResponseType,
		CopingSuggestions:  processed.Response.CopingSuggestions,
		Resources:          processed.Response.Resources,
		FollowUpQuestions:  processed.Response.FollowUpQuestions,
		Emotion:            processed.Emotion,
		Safety:             processed.Safety,
		ServicesUsed:       processed.ServicesUsed,
		FallbacksTriggered: processed.FallbacksTriggered,
		ProcessingTimeMs:   processed.TimingMs,
	}, nil
}

func (uc *implUseCase) validateChatInput(input chat.ChatInput) error {
	if len(input.Message) < chat.MinMessageLength {
		return chat.ErrMessageTooShort
	}
	if len(input.Message) > chat.MaxMessageLength {
		return chat.ErrMessageTooLong
	}
	return nil
}

// resolveConversation loads the addressed conversation or creates a
// new one titled from the first message.
func (uc *implUseCase) resolveConversation(ctx context.Context, sc model.Scope, input chat.ChatInput) (model.Conversation, error) {
	if input.ConversationID == "" {
		conv, err := uc.repo.CreateConversation(ctx, repository.CreateConversationOptions{
			UserID: sc.UserID,
			Title:  uc.generateTitle(input.Message),
		})
		if err != nil {
			uc.l.Errorf(ctx, "chat.usecase.Chat: CreateConversation failed: %v", err)
			return model.Conversation{}, fmt.Errorf("create conversation: %w", err)
		}
		return conv, nil
	}

	conv, err := uc.repo.GetConversationByID(ctx, input.ConversationID)
	if err != nil {
		return model.Conversation{}, chat.ErrConversationNotFound
	}
	if conv.UserID != sc.UserID {
		return model.Conversation{}, chat.ErrConversationNotFound
	}
	if conv.Status == model.ConversationStatusArchived {
		return model.Conversation{}, chat.ErrConversationArchived
	}
	return conv, nil
}

// persistExchange stores the user and assistant messages and bumps the
// conversation counters. Persistence failures are soft: the reply was
// already composed and must still reach the user.
func (uc *implUseCase) persistExchange(ctx context.Context, conversation model.Conversation, userMessage string, processed orchestrator.ProcessOutput) {
	_, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ConversationID: conversation.ID,
		Role:           model.MessageRoleUser,
		Content:        userMessage,
		Emotion:        processed.Emotion.PrimaryEmotion,
		SafetyLevel:    processed.Safety.Level,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Chat: save user message failed: %v", err)
	}

	meta := chat.MessageMeta{
		ResponseType:       processed.Response.ResponseType,
		CopingSuggestions:  processed.Response.CopingSuggestions,
		Resources:          processed.Response.Resources,
		FollowUpQuestions:  processed.Response.FollowUpQuestions,
		ServicesUsed:       processed.ServicesUsed,
		FallbacksTriggered: processed.FallbacksTriggered,
		ProcessingTimeMs:   processed.TimingMs,
		Source:             processed.Response.Source,
		Confidence:         processed.Emotion.Confidence,
		SentimentScore:     processed.Emotion.SentimentScore,
	}
	metaJSON, _ := json.Marshal(meta)

	_, err = uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ConversationID: conversation.ID,
		Role:           model.MessageRoleAssistant,
		Content:        processed.Response.Message,
		Emotion:        processed.Emotion.PrimaryEmotion,
		SafetyLevel:    processed.Safety.Level,
		Backend:        backendUsed(processed.ServicesUsed),
		Metadata:       metaJSON,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Chat: save assistant message failed: %v", err)
	}

	_ = uc.repo.UpdateConversationLastMessage(ctx, repository.UpdateLastMessageOptions{
		ConversationID: conversation.ID,
		MessageCount:   conversation.MessageCount + 2,
	})
}

// publishProcessed emits the anonymized analytics event. Only the
// hashed user id leaves the service, never message text.
func (uc *implUseCase) publishProcessed(ctx context.Context, sc model.Scope, conversationID string, processed orchestrator.ProcessOutput) {
	if uc.producer == nil {
		return
	}

	event := chat.MessageProcessedEvent{
		ConversationID:   conversationID,
		UserHash:         hashUserID(sc.UserID),
		Emotion:          processed.Emotion.PrimaryEmotion,
		SafetyLevel:      processed.Safety.Level,
		CrisisDetected:   processed.Emotion.CrisisIndicators,
		Backend:          backendUsed(processed.ServicesUsed),
		ResponseType:     processed.Response.ResponseType,
		ProcessingTimeMs: processed.TimingMs,
		OccurredAt:       time.Now(),
	}
	if err := uc.producer.PublishMessageProcessed(ctx, event); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Chat: publish message.processed failed: %v", err)
	}
}

// backendUsed is the backend that actually served the reply, the last
// entry in the services-used chain.
func backendUsed(servicesUsed []string) string {
	if len(servicesUsed) == 0 {
		return ""
	}
	return servicesUsed[len(servicesUsed)-1]
}

func hashUserID(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:8])
}
