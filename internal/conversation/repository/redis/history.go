package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"cashback-advisor/internal/conversation"
)

// Load returns the stored history of a session. A payload that cannot be
// decoded is logged and treated as an empty history.
func (s *historyStore) Load(ctx context.Context, sessionID string) (conversation.History, error) {
	raw, err := s.rdb.Get(ctx, historyKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return conversation.History{}, nil
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Load"), err)
		return nil, fmt.Errorf("%s: %w", s.dsn("Load"), err)
	}

	var history conversation.History
	if err := json.Unmarshal(raw, &history); err != nil {
		s.l.Warnf(ctx, "%s: discarding corrupt history for session %s: %v", s.dsn("Load"), sessionID, err)
		return conversation.History{}, nil
	}
	return history, nil
}

// Save writes the last window turns and resets the TTL. Concurrent saves to
// the same session are last-writer-wins.
func (s *historyStore) Save(ctx context.Context, sessionID string, history conversation.History) error {
	payload, err := json.Marshal(history.Window(s.window))
	if err != nil {
		return fmt.Errorf("%s: %w", s.dsn("Save"), err)
	}
	if err := s.rdb.Set(ctx, historyKey(sessionID), payload, s.ttl).Err(); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Save"), err)
		return fmt.Errorf("%s: %w", s.dsn("Save"), err)
	}
	return nil
}

// Clear deletes the history of a session. Clearing an unknown session is not an error.
func (s *historyStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, historyKey(sessionID)).Err(); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Clear"), err)
		return fmt.Errorf("%s: %w", s.dsn("Clear"), err)
	}
	return nil
}
