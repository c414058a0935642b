package conversation

import "errors"

var (
	ErrEmptyModelResponse = errors.New("model returned an empty response")
	ErrLockTimeout        = errors.New("timed out waiting for session lock")
)
