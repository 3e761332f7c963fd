package http

import (
	"companion-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/ai")
	api.Use(mw.InternalAuth())
	{
		api.GET("/health", h.Health)
	}
}
