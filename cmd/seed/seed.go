package main

import (
	"context"
	"fmt"
	"os"

	"cashback-advisor/config"
	"cashback-advisor/internal/account/repository"
	"cashback-advisor/pkg/log"
)

func seed(ctx context.Context, repo repository.Repository, cfg config.SeedConfig, l log.Logger) error {
	af, err := os.Open(cfg.AccountsFile)
	if err != nil {
		return fmt.Errorf("open accounts: %w", err)
	}
	defer af.Close()

	accounts, err := decodeAccounts(af)
	if err != nil {
		return err
	}
	if err := repo.SaveAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}
	l.Infof(ctx, "Stored %d accounts from %s", len(accounts), cfg.AccountsFile)

	tf, err := os.Open(cfg.TransactionsFile)
	if err != nil {
		return fmt.Errorf("open transactions: %w", err)
	}
	defer tf.Close()

	txs, err := decodeTransactions(tf)
	if err != nil {
		return err
	}
	if err := repo.ReplaceTransactions(ctx, txs); err != nil {
		return fmt.Errorf("save transactions: %w", err)
	}
	l.Infof(ctx, "Stored %d transactions from %s", len(txs), cfg.TransactionsFile)

	return nil
}
