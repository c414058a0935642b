package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	repo "cashback-advisor/internal/account/repository"
	"cashback-advisor/internal/model"
)

// ListTransactions decodes transactions:list. A missing key is an empty list.
func (r *implRepository) ListTransactions(ctx context.Context, opt repo.ListTransactionsOptions) ([]model.Transaction, error) {
	raw, err := r.rdb.Get(ctx, transactionsKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTransactions"), err)
		return nil, repo.ErrFailedToList
	}

	var txs []model.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTransactions"), err)
		return nil, fmt.Errorf("%w: %s", repo.ErrCorruptRecord, transactionsKey)
	}

	if opt.AccountID == 0 {
		if txs == nil {
			txs = []model.Transaction{}
		}
		return txs, nil
	}

	filtered := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.AccountID == opt.AccountID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

// ReplaceTransactions stores the whole list under transactions:list.
func (r *implRepository) ReplaceTransactions(ctx context.Context, txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	payload, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("%s: %w", r.dsn("ReplaceTransactions"), err)
	}
	if err := r.rdb.Set(ctx, transactionsKey, payload, 0).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReplaceTransactions"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}
