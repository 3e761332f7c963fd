package http

import (
	"time"

	"companion-srv/internal/chat"
	"companion-srv/internal/emotion"
	"companion-srv/internal/response"
	"companion-srv/internal/safety"
)

type chatReq struct {
	ConversationID   string `json:"conversation_id,omitempty"`
	Message          string `json:"message" binding:"required,min=3,max=2000"`
	PreferredBackend string `json:"preferred_backend,omitempty"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		ConversationID:   r.ConversationID,
		Message:          r.Message,
		PreferredBackend: r.PreferredBackend,
	}
}

type getConversationReq struct {
	ConversationID string
}

func (r getConversationReq) toInput() chat.GetConversationInput {
	return chat.GetConversationInput{
		ConversationID: r.ConversationID,
	}
}

type listConversationsReq struct {
	Status string
	Limit  int
	Offset int
}

func (r listConversationsReq) toInput() chat.ListConversationsInput {
	return chat.ListConversationsInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type archiveConversationReq struct {
	ConversationID string
}

func (r archiveConversationReq) toInput() chat.ArchiveConversationInput {
	return chat.ArchiveConversationInput{
		ConversationID: r.ConversationID,
	}
}

type chatResp struct {
	ConversationID     string              `json:"conversation_id"`
	Message            string              `json:"message"`
	ResponseType       string              `json:"response_type"`
	CopingSuggestions  []string            `json:"coping_suggestions"`
	Resources          []response.Resource `json:"resources"`
	FollowUpQuestions  []string            `json:"follow_up_questions"`
	Emotion            emotion.Signal      `json:"emotion"`
	Safety             safety.Assessment   `json:"safety"`
	ServicesUsed       []string            `json:"services_used"`
	FallbacksTriggered []string            `json:"fallbacks_triggered"`
	ProcessingTimeMs   int64               `json:"processing_time_ms"`
}

func (h *handler) newChatResp(o chat.ChatOutput) chatResp {
	return chatResp{
		ConversationID:     o.ConversationID,
		Message:            o.Message,
		ResponseType:       o.ResponseType,
		CopingSuggestions:  o.CopingSuggestions,
		Resources:          o.Resources,
		FollowUpQuestions:  o.FollowUpQuestions,
		Emotion:            o.Emotion,
		Safety:             o.Safety,
		ServicesUsed:       o.ServicesUsed,
		FallbacksTriggered: o.FallbacksTriggered,
		ProcessingTimeMs:   o.ProcessingTimeMs,
	}
}

type conversationResp struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Status        string        `json:"status"`
	MessageCount  int           `json:"message_count"`
	Messages      []messageResp `json:"messages,omitempty"`
	LastMessageAt *time.Time    `json:"last_message_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type messageResp struct {
	ID          string            `json:"id"`
	Role        string            `json:"role"`
	Content     string            `json:"content"`
	Emotion     string            `json:"emotion,omitempty"`
	SafetyLevel string            `json:"safety_level,omitempty"`
	Backend     string            `json:"backend,omitempty"`
	Metadata    *chat.MessageMeta `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (h *handler) newConversationResp(o chat.ConversationOutput) conversationResp {
	resp := conversationResp{
		ID:            o.ID,
		Title:         o.Title,
		Status:        o.Status,
		MessageCount:  o.MessageCount,
		LastMessageAt: o.LastMessageAt,
		CreatedAt:     o.CreatedAt,
	}
	for _, m := range o.Messages {
		resp.Messages = append(resp.Messages, messageResp{
			ID:          m.ID,
			Role:        m.Role,
			Content:     m.Content,
			Emotion:     m.Emotion,
			SafetyLevel: m.SafetyLevel,
			Backend:     m.Backend,
			Metadata:    m.Metadata,
			CreatedAt:   m.CreatedAt,
		})
	}
	return resp
}

func (h *handler) newListConversationsResp(o []chat.ConversationOutput) []conversationResp {
	resp := make([]conversationResp, len(o))
	for i, c := range o {
		resp[i] = h.newConversationResp(c)
	}
	return resp
}
