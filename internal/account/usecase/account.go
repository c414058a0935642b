package usecase

import (
	"context"
	"fmt"
	"strings"

	"cashback-advisor/internal/account"
	repo "cashback-advisor/internal/account/repository"
	"cashback-advisor/internal/model"
)

// ListAccounts returns every account ordered by ID.
func (uc *implUseCase) ListAccounts(ctx context.Context) ([]account.Account, error) {
	accounts, err := uc.repo.ListAccounts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.ListAccounts: %v", err)
		return nil, err
	}
	return accounts, nil
}

// CreateAccount validates and stores a new account. The nickname defaults to the name.
func (uc *implUseCase) CreateAccount(ctx context.Context, input account.CreateAccountInput) (account.Account, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return account.Account{}, fmt.Errorf("%w: name is required", account.ErrInvalidAccount)
	}
	if input.Limit < 0 || input.Balance < 0 {
		return account.Account{}, fmt.Errorf("%w: balance and limit must not be negative", account.ErrInvalidAccount)
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		nickname = name
	}

	cashback := make(map[model.Category]float64, len(input.Cashback))
	for c, rate := range input.Cashback {
		if rate < 0 {
			return account.Account{}, fmt.Errorf("%w: cashback rate for %s must not be negative", account.ErrInvalidAccount, c)
		}
		cashback[c] = rate
	}

	acc, err := uc.repo.CreateAccount(ctx, repo.CreateAccountOptions{
		Name:     name,
		Nickname: nickname,
		Balance:  input.Balance,
		Limit:    input.Limit,
		Cashback: cashback,
	})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.CreateAccount: %v", err)
		return account.Account{}, err
	}

	uc.l.Infof(ctx, "account.usecase.CreateAccount: created account %d (%s)", acc.ID, acc.Name)
	return acc, nil
}

// ListTransactions returns the transaction list, optionally for one account.
func (uc *implUseCase) ListTransactions(ctx context.Context, input account.ListTransactionsInput) ([]account.Transaction, error) {
	txs, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{AccountID: input.AccountID})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.ListTransactions: %v", err)
		return nil, err
	}
	return txs, nil
}

// Balances maps the display name of every account matching any of names to "$<balance>".
func (uc *implUseCase) Balances(ctx context.Context, names []string) (map[string]string, error) {
	accounts, err := uc.repo.ListAccounts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Balances: %v", err)
		return nil, err
	}

	results := make(map[string]string)
	for _, acc := range accounts {
		for _, name := range names {
			if acc.Matches(name) {
				results[acc.Name] = "$" + formatAmount(acc.Balance)
				break
			}
		}
	}
	return results, nil
}
