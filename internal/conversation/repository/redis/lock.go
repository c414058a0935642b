package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/log"
)

const (
	lockPollMin     = 10 * time.Millisecond
	lockPollMax     = 200 * time.Millisecond
	lockReleaseWait = 2 * time.Second
)

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// refreshScript extends the lease only if the lock still holds our token.
var refreshScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

type sessionLocker struct {
	rdb          goredis.UniversalClient
	l            log.Logger
	ttl          time.Duration
	refreshEvery time.Duration
}

// NewSessionLocker creates a conversation.SessionLocker shared by every
// replica talking to the same Redis. The lease is renewed every ttl/3 while
// held, so ttl only bounds how long a crashed holder keeps the session locked.
func NewSessionLocker(rdb goredis.UniversalClient, l log.Logger, ttl time.Duration) conversation.SessionLocker {
	if rdb == nil {
		panic("conversation/repository/redis: client is required")
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	refreshEvery := ttl / 3
	if refreshEvery <= 0 {
		refreshEvery = ttl
	}
	return &sessionLocker{rdb: rdb, l: l, ttl: ttl, refreshEvery: refreshEvery}
}

func (s *sessionLocker) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/redis.sessionLocker.%s", method)
}

// Lock polls SET NX until it wins the lock or ctx is done.
func (s *sessionLocker) Lock(ctx context.Context, sessionID string) (func(), error) {
	key := lockKey(sessionID)
	token := uuid.NewString()
	wait := lockPollMin

	for {
		ok, err := s.rdb.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %v", conversation.ErrLockTimeout, ctx.Err())
			}
			s.l.Errorf(ctx, "%s: %v", s.dsn("Lock"), err)
			return nil, fmt.Errorf("%s: %w", s.dsn("Lock"), err)
		}
		if ok {
			stop := make(chan struct{})
			done := make(chan struct{})
			go s.keepAlive(ctx, key, token, stop, done)
			return s.unlockFunc(ctx, key, token, stop, done), nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("%w: %v", conversation.ErrLockTimeout, ctx.Err())
		case <-timer.C:
		}
		if wait *= 2; wait > lockPollMax {
			wait = lockPollMax
		}
	}
}

// keepAlive renews the lease until stop is closed or the lock is lost.
func (s *sessionLocker) keepAlive(ctx context.Context, key, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	// The holder may still be saving after its request ctx is cancelled.
	ctx = context.WithoutCancel(ctx)
	ticker := time.NewTicker(s.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		rctx, cancel := context.WithTimeout(ctx, lockReleaseWait)
		n, err := refreshScript.Run(rctx, s.rdb, []string{key}, token, s.ttl.Milliseconds()).Int64()
		cancel()
		if err != nil {
			s.l.Warnf(ctx, "%s: %v", s.dsn("keepAlive"), err)
			continue
		}
		if n == 0 {
			s.l.Warnf(ctx, "%s: lease on %s lost", s.dsn("keepAlive"), key)
			return
		}
	}
}

func (s *sessionLocker) unlockFunc(ctx context.Context, key, token string, stop chan<- struct{}, done <-chan struct{}) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done

			// The caller's ctx may already be cancelled; release regardless.
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseWait)
			defer cancel()
			if err := releaseScript.Run(rctx, s.rdb, []string{key}, token).Err(); err != nil {
				s.l.Warnf(ctx, "%s: %v", s.dsn("Unlock"), err)
			}
		})
	}
}
