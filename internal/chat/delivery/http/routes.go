package http

import (
	"companion-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/chat", h.Chat)
		api.GET("/conversations", h.ListConversations)
		api.GET("/conversations/:conversation_id", h.GetConversation)
		api.DELETE("/conversations/:conversation_id", h.ArchiveConversation)
	}
}
