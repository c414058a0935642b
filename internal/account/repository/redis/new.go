package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/internal/account/repository"
	"cashback-advisor/pkg/log"
)

const (
	accountKeyPrefix = "account:"
	accountKeyMatch  = "account:*"
	accountSeqKey    = "accounts:seq"
	transactionsKey  = "transactions:list"

	scanCount = 100
)

type implRepository struct {
	rdb goredis.UniversalClient
	l   log.Logger
}

// New creates a new Redis-backed Repository for the account domain.
func New(rdb goredis.UniversalClient, l log.Logger) repository.Repository {
	if rdb == nil {
		panic("account/repository/redis: client is required")
	}
	return &implRepository{rdb: rdb, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("account/repository/redis.%s", method)
}

func accountKey(id int64) string {
	return fmt.Sprintf("%s%d", accountKeyPrefix, id)
}
