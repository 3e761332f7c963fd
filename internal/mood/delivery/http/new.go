package http

import (
	"companion-srv/internal/middleware"
	"companion-srv/internal/mood"
	"companion-srv/pkg/discord"
	"companion-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for mood HTTP handlers
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      mood.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc mood.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
