package httpserver

import (
	"context"

	"companion-srv/internal/middleware"

	"github.com/gin-contrib/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	root := srv.gin.Group("")

	orchUC, err := srv.setupSupportDomain(ctx, root, mw)
	if err != nil {
		return err
	}

	if err := srv.setupChatDomain(ctx, root, mw, orchUC); err != nil {
		return err
	}
	if err := srv.setupMoodDomain(ctx, root, mw, orchUC); err != nil {
		return err
	}
	if err := srv.setupCopingDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := cors.DefaultConfig()
	if len(srv.config.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = srv.config.CORS.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	corsConfig.AddAllowHeaders("Authorization")
	srv.gin.Use(cors.New(corsConfig))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
