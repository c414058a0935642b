package repository

import (
	"context"

	"cashback-advisor/internal/model"
)

// Repository is the composed interface for the account data store.
type Repository interface {
	AccountRepository
	TransactionRepository
}

// AccountRepository reads and writes account records.
type AccountRepository interface {
	// ListAccounts returns every stored account ordered by ID.
	ListAccounts(ctx context.Context) ([]model.Account, error)
	// GetAccount returns the zero Account (ID == 0) when not found.
	GetAccount(ctx context.Context, id int64) (model.Account, error)
	// CreateAccount assigns the next free ID and stores the account.
	CreateAccount(ctx context.Context, opt CreateAccountOptions) (model.Account, error)
	// SaveAccounts overwrites accounts by ID; used by the seeder.
	SaveAccounts(ctx context.Context, accounts []model.Account) error
}

// TransactionRepository reads and writes the transaction list.
type TransactionRepository interface {
	ListTransactions(ctx context.Context, opt ListTransactionsOptions) ([]model.Transaction, error)
	ReplaceTransactions(ctx context.Context, txs []model.Transaction) error
}
