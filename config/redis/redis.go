package redis

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/config"
)

var (
	mu     sync.Mutex
	client *goredis.Client
)

// Connect opens the shared client and verifies it with PING.
// Calling Connect again returns the already open client.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return client, nil
	}

	c := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}

	client = c
	return client, nil
}

// Disconnect closes the shared client, if any.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if client == nil {
		return
	}
	_ = client.Close()
	client = nil
}
