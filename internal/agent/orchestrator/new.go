package orchestrator

import (
	"cashback-advisor/internal/agent"
	"cashback-advisor/internal/conversation"
	pkgLog "cashback-advisor/pkg/log"
)

// Orchestrator runs the tool-calling loop for one user message at a time per session.
type Orchestrator struct {
	model    conversation.ModelClient
	history  conversation.HistoryStore
	locker   conversation.SessionLocker
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	opt      Options
}

func New(
	model conversation.ModelClient,
	history conversation.HistoryStore,
	locker conversation.SessionLocker,
	registry *agent.ToolRegistry,
	l pkgLog.Logger,
	opt Options,
) *Orchestrator {
	if opt.MaxToolRounds <= 0 {
		opt.MaxToolRounds = DefaultMaxToolRounds
	}
	if opt.ToolTimeout <= 0 {
		opt.ToolTimeout = DefaultToolTimeout
	}
	return &Orchestrator{
		model:    model,
		history:  history,
		locker:   locker,
		registry: registry,
		l:        l,
		opt:      opt,
	}
}
