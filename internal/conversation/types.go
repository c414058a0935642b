package conversation

import "strings"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser       Role = "user"
	RoleModel      Role = "model"
	RoleToolResult Role = "tool-result"
)

const (
	// DefaultSessionID is used when the caller does not name a session.
	DefaultSessionID = "default"

	// DefaultWindow is the number of turns kept per session.
	DefaultWindow = 20
)

// ToolCall is a request by the model to invoke a named tool.
// ID is the provider's call id and may be empty.
type ToolCall struct {
	ID   string                 `json:"id,omitempty"`
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// ToolResult answers exactly one ToolCall, correlated by position.
type ToolResult struct {
	CallID string                 `json:"call_id,omitempty"`
	Name   string                 `json:"name"`
	Result map[string]interface{} `json:"result"`
}

// Turn is one entry of a conversation. A model turn carries either Text or
// ToolCalls; a tool-result turn carries ToolResults.
type Turn struct {
	Role        Role         `json:"role"`
	Text        string       `json:"text,omitempty"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
}

// UserTurn builds a user turn.
func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

// ModelTextTurn builds a terminal model turn.
func ModelTextTurn(text string) Turn {
	return Turn{Role: RoleModel, Text: text}
}

// ModelCallTurn builds a model turn requesting tool calls.
func ModelCallTurn(calls []ToolCall) Turn {
	return Turn{Role: RoleModel, ToolCalls: calls}
}

// ToolResultTurn builds the turn answering a ModelCallTurn.
func ToolResultTurn(results []ToolResult) Turn {
	return Turn{Role: RoleToolResult, ToolResults: results}
}

// History is the ordered list of turns of a session, newest last.
type History []Turn

// Window returns at most the last n turns, oldest dropped first. Leading
// turns before the first user turn are dropped. When a single exchange is
// longer than n and no user turn is left, the window keeps the newest turns
// and drops only the leading tool results whose calls were cut off.
func (h History) Window(n int) History {
	if n > 0 && len(h) > n {
		h = h[len(h)-n:]
	}
	if trimmed := h.TrimLeading(); len(trimmed) > 0 {
		return trimmed
	}
	for len(h) > 0 && h[0].Role == RoleToolResult {
		h = h[1:]
	}
	return h
}

// TrimLeading drops turns before the first user turn.
func (h History) TrimLeading() History {
	for i, t := range h {
		if t.Role == RoleUser {
			return h[i:]
		}
	}
	return History{}
}

// Clone returns a copy that can be appended to without touching h.
func (h History) Clone() History {
	out := make(History, len(h))
	copy(out, h)
	return out
}

// NormalizeSessionID maps an empty or blank id to DefaultSessionID.
func NormalizeSessionID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// ModelResponse is what the model answered to one Send. It is terminal when
// Calls is empty.
type ModelResponse struct {
	Text  string
	Calls []ToolCall
}

// IsTerminal reports whether the model produced a final answer.
func (r ModelResponse) IsTerminal() bool {
	return len(r.Calls) == 0
}
