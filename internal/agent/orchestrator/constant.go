package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixRun      = "internal.agent.orchestrator.Run"
	LogPrefixDispatch = "internal.agent.orchestrator.dispatch"
	LogPrefixReset    = "internal.agent.orchestrator.Reset"
)

// User-visible messages
const (
	FallbackMessage = "Sorry, I couldn't finish working that out. Please try asking again in smaller steps."
)

// Tool result error messages
const (
	ErrMsgUnknownTool = "unknown tool"
)

// Log messages
const (
	LogMsgRound          = "round %d: model requested %d tool call(s)"
	LogMsgFinished       = "finished after %d tool round(s)"
	LogMsgCallingTool    = "calling tool %s with args: %+v"
	LogMsgUnknownTool    = "model requested unknown tool %q"
	LogMsgToolFailed     = "tool %s failed: %v"
	LogMsgMaxRounds      = "exceeded max tool rounds (%d)"
	LogMsgSaveFailed     = "failed to persist history: %v"
	LogMsgModelFailed    = "model call failed at round %d: %v"
	LogMsgHistoryFailure = "failed to load history: %v"
)

// Configuration
const (
	DefaultMaxToolRounds = 5
	DefaultToolTimeout   = 10 * time.Second

	// persistTimeout bounds the final history write, which runs detached from
	// the caller's cancellation.
	persistTimeout = 5 * time.Second
)
