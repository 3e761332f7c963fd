package http

import (
	"companion-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Send a support message
// @Description Send a message and receive an empathetic reply with coping suggestions
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat request"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: usecase Chat failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChatResp(o))
}

// @Summary Get conversation detail
// @Description Return full conversation info and messages
// @Tags Chat
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} conversationResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/conversations/{conversation_id} [get]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetConversationRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.GetConversation: processGetConversationRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetConversation(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.GetConversation: usecase GetConversation failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newConversationResp(o))
}

// @Summary List conversations
// @Description Paginate the caller's conversations
// @Tags Chat
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (ACTIVE or ARCHIVED)"
// @Param limit query int false "Number of records per page (default 20)"
// @Param offset query int false "Number of records to skip (default 0)"
// @Success 200 {array} conversationResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/conversations [get]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListConversationsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ListConversations: processListConversationsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListConversations(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ListConversations: usecase ListConversations failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListConversationsResp(o))
}

// @Summary Archive a conversation
// @Description Close a conversation for new messages
// @Tags Chat
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/conversations/{conversation_id} [delete]
func (h *handler) ArchiveConversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processArchiveConversationRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ArchiveConversation: processArchiveConversationRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ArchiveConversation(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.ArchiveConversation: usecase ArchiveConversation failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
