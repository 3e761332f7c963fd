package http

import (
	"companion-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/mood")
	api.Use(mw.Auth())
	{
		api.POST("", h.LogMood)
		api.GET("", h.ListEntries)
		api.GET("/summary", h.Summary)
	}
}
