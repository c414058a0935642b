package usecase

import (
	"context"

	"cashback-advisor/internal/account"
	repo "cashback-advisor/internal/account/repository"
	"cashback-advisor/internal/model"
)

const noTopCategory = "none"

// FinancialSummary lists owned cards and the spending per category across all accounts.
func (uc *implUseCase) FinancialSummary(ctx context.Context) (account.FinancialSummaryOutput, error) {
	accounts, err := uc.repo.ListAccounts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.FinancialSummary ListAccounts: %v", err)
		return account.FinancialSummaryOutput{}, err
	}
	txs, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.FinancialSummary ListTransactions: %v", err)
		return account.FinancialSummaryOutput{}, err
	}

	cards := make([]account.OwnedCard, len(accounts))
	for i, acc := range accounts {
		cards[i] = account.OwnedCard{Name: acc.Name, Limit: acc.Limit, Balance: acc.Balance}
	}

	totals := categoryTotals(txs)

	return account.FinancialSummaryOutput{
		OwnedCards:        cards,
		SpendingBreakdown: totals,
		TopCategory:       topCategory(totals),
	}, nil
}

// topCategory returns the category with the largest positive total, or "none".
// Ties go to the category listed first.
func topCategory(totals map[model.Category]float64) string {
	top := noTopCategory
	var highest float64
	for _, c := range model.Categories() {
		if totals[c] > highest {
			highest = totals[c]
			top = string(c)
		}
	}
	return top
}
