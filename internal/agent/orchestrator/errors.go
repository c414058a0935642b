package orchestrator

import "errors"

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrModelFailure = errors.New("model request failed")
)
