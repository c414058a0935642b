package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Transaction is one row of the spending history. Positive amounts are purchases.
type Transaction struct {
	AccountID int64    `json:"account_id"`
	Date      string   `json:"date,omitempty"`
	Merchant  string   `json:"merchant"`
	Category  Category `json:"category"`
	Amount    float64  `json:"amount"`
}

// UnmarshalJSON accepts account_id and amount either as numbers or as strings,
// since rows imported straight from CSV keep every column as text.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var raw struct {
		AccountID json.RawMessage `json:"account_id"`
		Date      string          `json:"date"`
		Merchant  string          `json:"merchant"`
		Category  string          `json:"category"`
		Amount    json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	accountID, err := parseFlexFloat(raw.AccountID)
	if err != nil {
		return fmt.Errorf("account_id: %w", err)
	}
	amount, err := parseFlexFloat(raw.Amount)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	t.AccountID = int64(accountID)
	t.Date = raw.Date
	t.Merchant = raw.Merchant
	t.Category = Category(strings.ToLower(strings.TrimSpace(raw.Category)))
	t.Amount = amount
	return nil
}

func parseFlexFloat(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
