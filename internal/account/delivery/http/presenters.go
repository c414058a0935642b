package http

import (
	"errors"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/model"
)

// --- Request DTOs ---

// createReq mirrors the dashboard form, which posts one field per cashback category.
type createReq struct {
	Name              string  `json:"name"               binding:"required,max=255"`
	Nickname          string  `json:"nickname"           binding:"max=255"`
	Balance           float64 `json:"balance"`
	Limit             float64 `json:"limit"`
	CashbackFuel      float64 `json:"cashback_fuel"`
	CashbackFood      float64 `json:"cashback_food"`
	CashbackGroceries float64 `json:"cashback_groceries"`
	CashbackTravel    float64 `json:"cashback_travel"`
	CashbackOther     float64 `json:"cashback_other"`
}

func (r createReq) validate() error {
	if r.Balance > r.Limit {
		return errors.New("balance must not exceed limit")
	}
	return nil
}

func (r createReq) toInput() account.CreateAccountInput {
	return account.CreateAccountInput{
		Name:     r.Name,
		Nickname: r.Nickname,
		Balance:  r.Balance,
		Limit:    r.Limit,
		Cashback: map[account.Category]float64{
			model.CategoryFuel:      r.CashbackFuel,
			model.CategoryFood:      r.CashbackFood,
			model.CategoryGroceries: r.CashbackGroceries,
			model.CategoryTravel:    r.CashbackTravel,
			model.CategoryOther:     r.CashbackOther,
		},
	}
}

// ---

type listTransactionsReq struct {
	AccountID int64 `form:"account_id"`
}

func (r listTransactionsReq) validate() error {
	if r.AccountID < 0 {
		return errInvalidID
	}
	return nil
}

func (r listTransactionsReq) toInput() account.ListTransactionsInput {
	return account.ListTransactionsInput{AccountID: r.AccountID}
}

// --- Response DTOs ---

type accountResp struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Nickname  string             `json:"nickname"`
	Balance   float64            `json:"balance"`
	Limit     float64            `json:"limit"`
	Available float64            `json:"available"`
	Cashback  map[string]float64 `json:"cashback"`
}

func newAccountResp(acc account.Account) accountResp {
	cashback := make(map[string]float64, len(acc.Cashback))
	for c, rate := range acc.Cashback {
		cashback[string(c)] = rate
	}
	return accountResp{
		ID:        acc.ID,
		Name:      acc.Name,
		Nickname:  acc.Nickname,
		Balance:   acc.Balance,
		Limit:     acc.Limit,
		Available: acc.Available(),
		Cashback:  cashback,
	}
}

type listAccountsResp struct {
	Accounts []accountResp `json:"accounts"`
}

func (h *handler) newListAccountsResp(accounts []account.Account) listAccountsResp {
	items := make([]accountResp, len(accounts))
	for i, acc := range accounts {
		items[i] = newAccountResp(acc)
	}
	return listAccountsResp{Accounts: items}
}

type createResp struct {
	Account accountResp `json:"account"`
}

func (h *handler) newCreateResp(acc account.Account) createResp {
	return createResp{Account: newAccountResp(acc)}
}

type transactionResp struct {
	AccountID int64   `json:"account_id"`
	Date      string  `json:"date,omitempty"`
	Merchant  string  `json:"merchant"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
}

type listTransactionsResp struct {
	Transactions []transactionResp `json:"transactions"`
}

func (h *handler) newListTransactionsResp(txs []account.Transaction) listTransactionsResp {
	items := make([]transactionResp, len(txs))
	for i, tx := range txs {
		items[i] = transactionResp{
			AccountID: tx.AccountID,
			Date:      tx.Date,
			Merchant:  tx.Merchant,
			Category:  string(tx.Category),
			Amount:    tx.Amount,
		}
	}
	return listTransactionsResp{Transactions: items}
}

type merchantResp struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
}

type recommendationResp struct {
	Category    string  `json:"category"`
	Card        string  `json:"card"`
	Rate        float64 `json:"rate"`
	Savings     float64 `json:"savings"`
	Explanation string  `json:"explanation"`
}

type savingsResp struct {
	Account          accountResp         `json:"account"`
	CategoryTotals   map[string]float64  `json:"category_totals"`
	TopMerchants     []merchantResp      `json:"top_merchants"`
	PotentialSavings float64             `json:"potential_savings"`
	Recommendation   *recommendationResp `json:"recommendation,omitempty"`
}

func (h *handler) newSavingsResp(out account.InsightsOutput) savingsResp {
	totals := make(map[string]float64, len(out.CategoryTotals))
	for c, total := range out.CategoryTotals {
		totals[string(c)] = total
	}

	merchants := make([]merchantResp, len(out.TopMerchants))
	for i, m := range out.TopMerchants {
		merchants[i] = merchantResp{Merchant: m.Merchant, Total: m.Total}
	}

	resp := savingsResp{
		Account:          newAccountResp(out.Account),
		CategoryTotals:   totals,
		TopMerchants:     merchants,
		PotentialSavings: out.PotentialSavings,
	}
	if rec := out.Recommendation; rec != nil {
		resp.Recommendation = &recommendationResp{
			Category:    string(rec.Category),
			Card:        rec.Card,
			Rate:        rec.Rate,
			Savings:     rec.Savings,
			Explanation: rec.Explanation,
		}
	}
	return resp
}
