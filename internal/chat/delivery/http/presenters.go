package http

import (
	"strings"

	"cashback-advisor/internal/agent/orchestrator"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id" binding:"max=128"`
	Query     string `json:"query"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return orchestrator.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() orchestrator.RunInput {
	return orchestrator.RunInput{
		SessionID: r.SessionID,
		Text:      r.Query,
	}
}

// --- Response DTOs ---

// chatResp keeps the {"response": "..."} shape the chat page reads, for
// answers and failures alike.
type chatResp struct {
	Response string `json:"response"`
}

type resetResp struct {
	SessionID string `json:"session_id"`
}
