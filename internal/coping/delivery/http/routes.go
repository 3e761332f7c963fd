package http

import (
	"companion-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/coping")
	api.Use(mw.Auth())
	{
		api.GET("/tools", h.ListTools)
		api.GET("/tools/:tool_id", h.GetTool)
		api.GET("/recommend", h.Recommend)
	}
}
