package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cashback-advisor/internal/model"
)

// Columns of transactionHistory.csv. Header names are matched case-insensitively.
const (
	colAccountID = "account_id"
	colDate      = "date"
	colMerchant  = "merchant"
	colCategory  = "category"
	colAmount    = "amount"
)

var errMissingColumn = errors.New("missing column")

// decodeAccounts reads the accountsList.json array.
func decodeAccounts(r io.Reader) ([]model.Account, error) {
	var accounts []model.Account
	if err := json.NewDecoder(r).Decode(&accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	for i, acc := range accounts {
		if acc.ID <= 0 {
			return nil, fmt.Errorf("account %d: id must be positive", i)
		}
		if acc.Cashback == nil {
			accounts[i].Cashback = map[model.Category]float64{}
		}
	}
	return accounts, nil
}

// decodeTransactions reads a headed CSV into transactions.
// Unknown categories fold into other; empty amounts read as zero.
func decodeTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range []string{colAccountID, colMerchant, colCategory, colAmount} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %s", errMissingColumn, col)
		}
	}

	field := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var txs []model.Transaction
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		accountID, err := strconv.ParseInt(field(row, colAccountID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: account_id: %w", line, err)
		}
		var amount float64
		if s := field(row, colAmount); s != "" {
			if amount, err = strconv.ParseFloat(s, 64); err != nil {
				return nil, fmt.Errorf("line %d: amount: %w", line, err)
			}
		}

		txs = append(txs, model.Transaction{
			AccountID: accountID,
			Date:      field(row, colDate),
			Merchant:  field(row, colMerchant),
			Category:  model.ParseCategory(field(row, colCategory)),
			Amount:    amount,
		})
	}

	return txs, nil
}
