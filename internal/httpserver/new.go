package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/config"
	"cashback-advisor/internal/conversation/modelclient"
	"cashback-advisor/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	redis goredis.UniversalClient
	llm   modelclient.Generator

	// Tuning
	chat      config.ChatConfig
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Redis goredis.UniversalClient
	LLM   modelclient.Generator

	Chat      config.ChatConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		redis:       cfg.Redis,
		llm:         cfg.LLM,
		chat:        cfg.Chat,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}
	if srv.llm == nil {
		return errors.New("llm generator is required")
	}
	return nil
}
