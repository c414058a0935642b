package tools

import (
	"context"
	"fmt"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/agent"
)

// GetAccountBalanceTool looks up balances by account name or nickname.
type GetAccountBalanceTool struct {
	uc account.UseCase
}

// NewGetAccountBalanceTool creates a new balance lookup tool.
func NewGetAccountBalanceTool(uc account.UseCase) agent.Tool {
	return &GetAccountBalanceTool{uc: uc}
}

func (t *GetAccountBalanceTool) Name() string {
	return "get_account_balance"
}

func (t *GetAccountBalanceTool) Description() string {
	return "Get the balance of one or more accounts"
}

func (t *GetAccountBalanceTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"account_names": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "List of account names or nicknames to check balance for",
			},
		},
		"required": []string{"account_names"},
	}
}

type getAccountBalanceInput struct {
	AccountNames []string `json:"account_names"`
}

func (t *GetAccountBalanceTool) Execute(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	var input getAccountBalanceInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	balances, err := t.uc.Balances(ctx, input.AccountNames)
	if err != nil {
		return nil, fmt.Errorf("balance lookup failed: %w", err)
	}

	result := make(map[string]interface{}, len(balances))
	for name, balance := range balances {
		result[name] = balance
	}
	return result, nil
}

var _ agent.Tool = (*GetAccountBalanceTool)(nil)
