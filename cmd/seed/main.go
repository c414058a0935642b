package main

import (
	"context"
	"fmt"
	"os"

	"cashback-advisor/config"
	"cashback-advisor/config/redis"
	accountRepo "cashback-advisor/internal/account/repository/redis"
	"cashback-advisor/pkg/log"
)

// main loads the sample accounts and transaction history into Redis.
// Existing accounts with the same IDs are overwritten and the transaction list is replaced.
func main() {
	cfg, err := config.LoadWithoutLLM()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		os.Exit(1)
	}
	defer redis.Disconnect()

	if err := seed(ctx, accountRepo.New(rdb, logger), cfg.Seed, logger); err != nil {
		logger.Error(ctx, "Seeding failed: ", err)
		redis.Disconnect()
		os.Exit(1)
	}

	logger.Info(ctx, "SEED COMPLETE")
}
