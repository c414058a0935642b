package http

import (
	"context"

	"cashback-advisor/internal/agent/orchestrator"
	"cashback-advisor/pkg/log"
)

// Engine is the conversation engine behind the chat endpoints.
// *orchestrator.Orchestrator satisfies it.
type Engine interface {
	Run(ctx context.Context, input orchestrator.RunInput) (orchestrator.RunOutput, error)
	Reset(ctx context.Context, sessionID string) error
}

type handler struct {
	l      log.Logger
	engine Engine
}

// New creates a new HTTP handler for the chat endpoints.
func New(l log.Logger, engine Engine) *handler {
	return &handler{
		l:      l,
		engine: engine,
	}
}
