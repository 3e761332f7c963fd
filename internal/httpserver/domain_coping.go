package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	copingHTTP "companion-srv/internal/coping/delivery/http"
	copingUsecase "companion-srv/internal/coping/usecase"
	"companion-srv/internal/middleware"
)

func (srv *HTTPServer) setupCopingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := copingUsecase.New(nil, srv.l)

	handler := copingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Coping domain registered")
	return nil
}
