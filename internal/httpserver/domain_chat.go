package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"companion-srv/internal/chat"
	chatHTTP "companion-srv/internal/chat/delivery/http"
	chatProducer "companion-srv/internal/chat/delivery/kafka/producer"
	chatPostgre "companion-srv/internal/chat/repository/postgre"
	chatUsecase "companion-srv/internal/chat/usecase"
	"companion-srv/internal/middleware"
	"companion-srv/internal/orchestrator"
)

func (srv *HTTPServer) setupChatDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, orchUC orchestrator.UseCase) error {
	repo := chatPostgre.New(srv.postgresDB, srv.l)

	var producer chat.Producer
	if srv.kafkaProducer != nil {
		producer = chatProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := chatUsecase.New(repo, orchUC, producer, srv.l)

	handler := chatHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
