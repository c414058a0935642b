package memory

import (
	"context"
	"fmt"

	"cashback-advisor/internal/conversation"
	"cashback-advisor/pkg/keymutex"
)

type sessionLocker struct {
	km *keymutex.KeyMutex
}

// NewSessionLocker creates an in-process conversation.SessionLocker. It only
// serializes requests handled by this process.
func NewSessionLocker() conversation.SessionLocker {
	return &sessionLocker{km: keymutex.New()}
}

func (s *sessionLocker) Lock(ctx context.Context, sessionID string) (func(), error) {
	unlock, err := s.km.Lock(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", conversation.ErrLockTimeout, err)
	}
	return unlock, nil
}
