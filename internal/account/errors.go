package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidAmount   = errors.New("amount must be greater than 0")
	ErrInvalidAccount  = errors.New("invalid account")
)
