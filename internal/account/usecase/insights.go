package usecase

import (
	"context"
	"fmt"
	"sort"

	"cashback-advisor/internal/account"
	repo "cashback-advisor/internal/account/repository"
	"cashback-advisor/internal/model"
)

const topMerchants = 3

// Insights summarizes one account's spending and what switching cards would have saved.
func (uc *implUseCase) Insights(ctx context.Context, accountID int64) (account.InsightsOutput, error) {
	acc, err := uc.repo.GetAccount(ctx, accountID)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Insights GetAccount: %v", err)
		return account.InsightsOutput{}, err
	}
	if acc.ID == 0 {
		return account.InsightsOutput{}, account.ErrAccountNotFound
	}

	txs, err := uc.repo.ListTransactions(ctx, repo.ListTransactionsOptions{AccountID: accountID})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.Insights ListTransactions: %v", err)
		return account.InsightsOutput{}, err
	}

	totals := categoryTotals(txs)
	savings, rec := potentialSavings(acc, totals)

	return account.InsightsOutput{
		Account:          acc,
		CategoryTotals:   totals,
		TopMerchants:     merchantTotals(txs),
		PotentialSavings: savings,
		Recommendation:   rec,
	}, nil
}

// potentialSavings compares the account's rates with the best market rate per category.
// A missing owned rate counts as 1%.
func potentialSavings(acc account.Account, totals map[model.Category]float64) (float64, *account.SavingsRecommendation) {
	var total float64
	var rec *account.SavingsRecommendation

	for _, c := range model.Categories() {
		spend := totals[c]
		if spend <= 0 {
			continue
		}
		current := acc.Cashback[c]
		if current == 0 {
			current = fallbackCurrentRate
		}
		best := marketBestRate(c)
		if best <= current {
			continue
		}

		saved := spend * (best - current) / 100
		total += saved

		if rec == nil || saved > rec.Savings {
			cards := marketCardsFor(c)
			rec = &account.SavingsRecommendation{
				Category: c,
				Card:     cards[0].Name,
				Rate:     best,
				Savings:  saved,
			}
		}
	}

	if rec != nil {
		rec.Explanation = fmt.Sprintf(
			"You spent $%.2f on %s with %s. The %s pays %s%% there, which would have earned you $%.2f more.",
			totals[rec.Category], rec.Category, acc.Name, rec.Card, formatAmount(rec.Rate), rec.Savings)
	}
	return total, rec
}

// merchantTotals returns the merchants with the most positive spending, highest first.
func merchantTotals(txs []account.Transaction) []account.MerchantSpend {
	byMerchant := make(map[string]float64)
	var order []string
	for _, tx := range txs {
		if tx.Amount <= 0 {
			continue
		}
		if _, seen := byMerchant[tx.Merchant]; !seen {
			order = append(order, tx.Merchant)
		}
		byMerchant[tx.Merchant] += tx.Amount
	}

	merchants := make([]account.MerchantSpend, len(order))
	for i, m := range order {
		merchants[i] = account.MerchantSpend{Merchant: m, Total: byMerchant[m]}
	}
	sort.SliceStable(merchants, func(i, j int) bool { return merchants[i].Total > merchants[j].Total })
	if len(merchants) > topMerchants {
		merchants = merchants[:topMerchants]
	}
	return merchants
}
