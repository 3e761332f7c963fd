package http

import (
	"companion-srv/internal/chat"
	"companion-srv/internal/middleware"
	"companion-srv/pkg/discord"
	"companion-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for chat HTTP handlers
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      chat.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc chat.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
