package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"companion-srv/internal/middleware"
	moodHTTP "companion-srv/internal/mood/delivery/http"
	moodPostgre "companion-srv/internal/mood/repository/postgre"
	moodUsecase "companion-srv/internal/mood/usecase"
	"companion-srv/internal/orchestrator"
)

func (srv *HTTPServer) setupMoodDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware, orchUC orchestrator.UseCase) error {
	repo := moodPostgre.New(srv.postgresDB, srv.l)

	uc := moodUsecase.New(repo, orchUC, srv.l)

	handler := moodHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Mood domain registered")
	return nil
}
