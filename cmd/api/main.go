package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"companion-srv/config"
	configKafka "companion-srv/config/kafka"
	configPostgre "companion-srv/config/postgre"
	configRedis "companion-srv/config/redis"
	"companion-srv/internal/httpserver"
	"companion-srv/pkg/discord"
	"companion-srv/pkg/gemini"
	pkgJWT "companion-srv/pkg/jwt"
	pkgKafka "companion-srv/pkg/kafka"
	"companion-srv/pkg/log"
)

// @title       Companion Service API
// @description Conversational mental-health support API: chat, mood tracking, coping tools.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.Connect(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			kafkaProducer = nil // Continue without analytics events
		} else {
			defer configKafka.Disconnect()
			logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
		}
	}

	// 8. Initialize Gemini client
	// An empty API key yields a client that reports unavailable; the
	// engine then serves rule-based responses only.
	geminiClient := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if geminiClient.IsAvailable() {
		logger.Infof(ctx, "Gemini client initialized with model %s", cfg.Gemini.Model)
	} else {
		logger.Warnf(ctx, "Gemini API key not configured; external backend disabled")
	}

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 10. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// LLM Configuration
		GeminiClient: geminiClient,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
