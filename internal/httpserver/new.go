package httpserver

import (
	"database/sql"
	"errors"

	"companion-srv/config"
	"companion-srv/pkg/discord"
	"companion-srv/pkg/gemini"
	pkgJWT "companion-srv/pkg/jwt"
	pkgKafka "companion-srv/pkg/kafka"
	"companion-srv/pkg/log"
	pkgRedis "companion-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer

	// LLM Configuration
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional; nil disables analytics events)
	KafkaProducer pkgKafka.IProducer

	// LLM Configuration
	GeminiClient gemini.IGemini

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration (optional)
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// LLM Configuration
		geminiClient: cfg.GeminiClient,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// LLM Configuration (the client itself handles a missing API key)
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
