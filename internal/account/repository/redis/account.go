package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	repo "cashback-advisor/internal/account/repository"
	"cashback-advisor/internal/model"
)

// ListAccounts walks account:* with SCAN and returns the accounts ordered by ID.
// Records are fetched with pipelined GETs so the keys may live in different
// cluster slots. A record that fails to decode fails the whole listing.
func (r *implRepository) ListAccounts(ctx context.Context) ([]model.Account, error) {
	keys, err := r.scanKeys(ctx, accountKeyMatch)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListAccounts"), err)
		return nil, repo.ErrFailedToList
	}
	if len(keys) == 0 {
		return []model.Account{}, nil
	}

	pipe := r.rdb.Pipeline()
	cmds := make([]*goredis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		r.l.Errorf(ctx, "%s get: %v", r.dsn("ListAccounts"), err)
		return nil, repo.ErrFailedToList
	}

	accounts := make([]model.Account, 0, len(keys))
	for i, cmd := range cmds {
		raw, err := cmd.Bytes()
		if errors.Is(err, goredis.Nil) {
			// deleted between SCAN and GET
			continue
		}
		if err != nil {
			r.l.Errorf(ctx, "%s get %s: %v", r.dsn("ListAccounts"), keys[i], err)
			return nil, repo.ErrFailedToList
		}
		var acc model.Account
		if err := json.Unmarshal(raw, &acc); err != nil {
			r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("ListAccounts"), keys[i], err)
			return nil, fmt.Errorf("%w: %s", repo.ErrCorruptRecord, keys[i])
		}
		accounts = append(accounts, acc)
	}

	sort.SliceStable(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// scanKeys collects the keys matching pattern. On a cluster every master is scanned.
func (r *implRepository) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	cluster, ok := r.rdb.(*goredis.ClusterClient)
	if !ok {
		return scanNode(ctx, r.rdb, pattern)
	}

	var (
		mu   sync.Mutex
		keys []string
	)
	err := cluster.ForEachMaster(ctx, func(ctx context.Context, node *goredis.Client) error {
		nodeKeys, err := scanNode(ctx, node, pattern)
		if err != nil {
			return err
		}
		mu.Lock()
		keys = append(keys, nodeKeys...)
		mu.Unlock()
		return nil
	})
	return keys, err
}

func scanNode(ctx context.Context, c goredis.Cmdable, pattern string) ([]string, error) {
	var keys []string
	iter := c.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	return keys, iter.Err()
}

// GetAccount retrieves a single account. Returns zero-value Account when not found.
func (r *implRepository) GetAccount(ctx context.Context, id int64) (model.Account, error) {
	raw, err := r.rdb.Get(ctx, accountKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.Account{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAccount"), err)
		return model.Account{}, repo.ErrFailedToGet
	}

	var acc model.Account
	if err := json.Unmarshal(raw, &acc); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("GetAccount"), err)
		return model.Account{}, fmt.Errorf("%w: %s", repo.ErrCorruptRecord, accountKey(id))
	}
	return acc, nil
}

// CreateAccount takes the next value of accounts:seq and claims account:<id> with SETNX,
// skipping IDs already used by seeded records.
func (r *implRepository) CreateAccount(ctx context.Context, opt repo.CreateAccountOptions) (model.Account, error) {
	const maxAttempts = 32

	for attempt := 0; attempt < maxAttempts; attempt++ {
		id, err := r.rdb.Incr(ctx, accountSeqKey).Result()
		if err != nil {
			r.l.Errorf(ctx, "%s incr: %v", r.dsn("CreateAccount"), err)
			return model.Account{}, repo.ErrFailedToInsert
		}

		acc := model.Account{
			ID:       id,
			Name:     opt.Name,
			Nickname: opt.Nickname,
			Balance:  opt.Balance,
			Limit:    opt.Limit,
			Cashback: opt.Cashback,
		}
		payload, err := json.Marshal(acc)
		if err != nil {
			return model.Account{}, fmt.Errorf("%s: %w", r.dsn("CreateAccount"), err)
		}

		ok, err := r.rdb.SetNX(ctx, accountKey(id), payload, 0).Result()
		if err != nil {
			r.l.Errorf(ctx, "%s setnx: %v", r.dsn("CreateAccount"), err)
			return model.Account{}, repo.ErrFailedToInsert
		}
		if ok {
			return acc, nil
		}
	}

	r.l.Errorf(ctx, "%s: no free id after %d attempts", r.dsn("CreateAccount"), maxAttempts)
	return model.Account{}, repo.ErrFailedToInsert
}

// SaveAccounts overwrites account:<id> for every account and moves accounts:seq
// past the highest stored ID.
func (r *implRepository) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	var maxID int64
	pipe := r.rdb.TxPipeline()
	for _, acc := range accounts {
		payload, err := json.Marshal(acc)
		if err != nil {
			return fmt.Errorf("%s: %w", r.dsn("SaveAccounts"), err)
		}
		pipe.Set(ctx, accountKey(acc.ID), payload, 0)
		if acc.ID > maxID {
			maxID = acc.ID
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveAccounts"), err)
		return repo.ErrFailedToInsert
	}

	seq, err := r.rdb.Get(ctx, accountSeqKey).Int64()
	if err != nil && !errors.Is(err, goredis.Nil) {
		r.l.Errorf(ctx, "%s seq: %v", r.dsn("SaveAccounts"), err)
		return repo.ErrFailedToInsert
	}
	if seq < maxID {
		if err := r.rdb.Set(ctx, accountSeqKey, maxID, 0).Err(); err != nil {
			r.l.Errorf(ctx, "%s seq: %v", r.dsn("SaveAccounts"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}
