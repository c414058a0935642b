package usecase

import (
	"strconv"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/model"
)

// formatAmount renders a number the way the dashboard shows it: no trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// categoryTotals sums positive amounts per category; unknown categories fold into other.
func categoryTotals(txs []account.Transaction) map[model.Category]float64 {
	totals := make(map[model.Category]float64, len(model.Categories()))
	for _, c := range model.Categories() {
		totals[c] = 0
	}
	for _, tx := range txs {
		if tx.Amount <= 0 {
			continue
		}
		totals[model.ParseCategory(string(tx.Category))] += tx.Amount
	}
	return totals
}
