package repository

import "cashback-advisor/internal/model"

// CreateAccountOptions holds parameters for inserting a new Account.
type CreateAccountOptions struct {
	Name     string
	Nickname string
	Balance  float64
	Limit    float64
	Cashback map[model.Category]float64
}

// ListTransactionsOptions filters the transaction list. Zero AccountID means all.
type ListTransactionsOptions struct {
	AccountID int64
}
