package agent

import "errors"

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrHandlerFailure   = errors.New("tool handler failed")
)
