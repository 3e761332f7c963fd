package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	emotionRepo "companion-srv/internal/emotion/repository"
	emotionRedis "companion-srv/internal/emotion/repository/redis"
	emotionUsecase "companion-srv/internal/emotion/usecase"
	"companion-srv/internal/middleware"
	"companion-srv/internal/orchestrator"
	orchHTTP "companion-srv/internal/orchestrator/delivery/http"
	orchUsecase "companion-srv/internal/orchestrator/usecase"
	responseUsecase "companion-srv/internal/response/usecase"
	safetyUsecase "companion-srv/internal/safety/usecase"
	"companion-srv/pkg/sentiment"
)

func (srv *HTTPServer) setupSupportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) (orchestrator.UseCase, error) {
	scorer := sentiment.NewScorer()

	var cache emotionRepo.Cache
	if srv.config.Support.CacheEnabled {
		cache = emotionRedis.New(srv.redisClient, srv.l)
	}
	cacheTTL := time.Duration(srv.config.Support.CacheTTL) * time.Second

	emotionUC := emotionUsecase.New(scorer, cache, cacheTTL, srv.l)
	safetyUC := safetyUsecase.New()
	responseUC := responseUsecase.New(srv.geminiClient, srv.l, nil)

	health := orchestrator.NewHealthTracker()
	orchUC := orchUsecase.New(
		emotionUC,
		safetyUC,
		responseUC,
		srv.geminiClient,
		health,
		srv.config.Support.DefaultBackend,
		srv.l,
		nil,
	)

	handler := orchHTTP.New(srv.l, orchUC, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Support domain registered")
	return orchUC, nil
}
