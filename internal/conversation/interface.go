package conversation

import "context"

// HistoryStore persists the bounded history of every session.
type HistoryStore interface {
	// Load returns the stored history. A missing or unreadable record is an
	// empty history; only store failures are errors.
	Load(ctx context.Context, sessionID string) (History, error)
	// Save replaces the stored history with its last window turns and refreshes the TTL.
	Save(ctx context.Context, sessionID string, history History) error
	// Clear deletes the history of a session.
	Clear(ctx context.Context, sessionID string) error
}

// ModelClient sends a conversation plus the next turn to the model.
type ModelClient interface {
	Send(ctx context.Context, conversation History, next Turn) (ModelResponse, error)
}

// SessionLocker serializes work per session.
type SessionLocker interface {
	// Lock blocks until the session is free or ctx is done. The returned
	// func releases the lock.
	Lock(ctx context.Context, sessionID string) (func(), error)
}
