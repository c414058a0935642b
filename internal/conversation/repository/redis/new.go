package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/log"
)

const (
	historyKeyPrefix = "chat:history:"
	lockKeyPrefix    = "chat:lock:"

	defaultHistoryTTL = time.Hour
	defaultLockTTL    = 2 * time.Minute
)

// HistoryOptions configures the history store. Zero values pick the defaults.
type HistoryOptions struct {
	Window int
	TTL    time.Duration
}

type historyStore struct {
	rdb    goredis.UniversalClient
	l      log.Logger
	window int
	ttl    time.Duration
}

// NewHistoryStore creates a Redis-backed conversation.HistoryStore.
func NewHistoryStore(rdb goredis.UniversalClient, l log.Logger, opt HistoryOptions) conversation.HistoryStore {
	if rdb == nil {
		panic("conversation/repository/redis: client is required")
	}
	if opt.Window <= 0 {
		opt.Window = conversation.DefaultWindow
	}
	if opt.TTL <= 0 {
		opt.TTL = defaultHistoryTTL
	}
	return &historyStore{rdb: rdb, l: l, window: opt.Window, ttl: opt.TTL}
}

// dsn is a helper to return a method-scoped context string for logging.
func (s *historyStore) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/redis.%s", method)
}

func historyKey(sessionID string) string {
	return historyKeyPrefix + sessionID
}

func lockKey(sessionID string) string {
	return lockKeyPrefix + sessionID
}
