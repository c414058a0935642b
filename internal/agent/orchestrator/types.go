package orchestrator

import "time"

// RunInput is one user message for a session. An empty SessionID selects the default session.
type RunInput struct {
	SessionID string
	Text      string
}

// RunOutput is the answer to a RunInput.
type RunOutput struct {
	Text string
	// Rounds is the number of tool rounds dispatched before the answer.
	Rounds int
	// LoopBoundExceeded is set when the model kept asking for tools past the
	// round limit and Text is the fallback message.
	LoopBoundExceeded bool
}

// Options configures the engine. Zero values pick the defaults.
type Options struct {
	MaxToolRounds int
	ToolTimeout   time.Duration
}
