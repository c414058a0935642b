package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cashback-advisor/config"
	"cashback-advisor/config/redis"
	_ "cashback-advisor/docs" // Swagger docs
	"cashback-advisor/internal/httpserver"
	"cashback-advisor/pkg/llmprovider"
	"cashback-advisor/pkg/log"
)

// @title       Cashback Advisor API
// @description Credit card assistant: a tool-calling chat over the stored accounts and transactions, plus the dashboard endpoints.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cashback Advisor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Redis
	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect()
	logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)

	// 4. LLM providers with fallback
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerConfig, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerConfig, logger)
	logger.Infof(ctx, "LLM ready: %s (%s), %d provider(s)", llm.Name(), llm.Model(), len(providers))

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Redis:       rdb,
		LLM:         llm,
		Chat:        cfg.Chat,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
