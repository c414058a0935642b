package tools

import (
	"context"
	"fmt"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/agent"
)

// GetFinancialSummaryTool reports owned cards and spending per category.
type GetFinancialSummaryTool struct {
	uc account.UseCase
}

// NewGetFinancialSummaryTool creates a new summary tool.
func NewGetFinancialSummaryTool(uc account.UseCase) agent.Tool {
	return &GetFinancialSummaryTool{uc: uc}
}

func (t *GetFinancialSummaryTool) Name() string {
	return "get_financial_summary"
}

func (t *GetFinancialSummaryTool) Description() string {
	return "Get an overview of the user's cards (limits and balances) and total spending per category"
}

func (t *GetFinancialSummaryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetFinancialSummaryTool) Execute(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	out, err := t.uc.FinancialSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary failed: %w", err)
	}

	cards := make([]map[string]interface{}, 0, len(out.OwnedCards))
	for _, c := range out.OwnedCards {
		cards = append(cards, map[string]interface{}{
			"name":    c.Name,
			"limit":   c.Limit,
			"balance": c.Balance,
		})
	}

	breakdown := make(map[string]interface{}, len(out.SpendingBreakdown))
	for c, total := range out.SpendingBreakdown {
		breakdown[string(c)] = total
	}

	return map[string]interface{}{
		"owned_cards":        cards,
		"spending_breakdown": breakdown,
		"top_category":       out.TopCategory,
	}, nil
}

var _ agent.Tool = (*GetFinancialSummaryTool)(nil)
