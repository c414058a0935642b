package tools

import (
	"context"
	"fmt"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/agent"
	"cashback-advisor/internal/model"
)

// CheckAffordabilityTool picks the card with the best cashback that can cover a purchase.
type CheckAffordabilityTool struct {
	uc account.UseCase
}

// NewCheckAffordabilityTool creates a new affordability tool.
func NewCheckAffordabilityTool(uc account.UseCase) agent.Tool {
	return &CheckAffordabilityTool{uc: uc}
}

func (t *CheckAffordabilityTool) Name() string {
	return "check_affordability"
}

func (t *CheckAffordabilityTool) Description() string {
	return "Check if user can afford an item and recommend best account based on cashback and balances"
}

func (t *CheckAffordabilityTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"item": map[string]interface{}{
				"type":        "string",
				"description": "The item the user wants to buy",
			},
			"amount": map[string]interface{}{
				"type":        "number",
				"description": "The cost of the item",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"enum":        categoryEnum(),
				"description": "The category of the purchase",
			},
		},
		"required": []string{"item", "amount"},
	}
}

type checkAffordabilityInput struct {
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

func (t *CheckAffordabilityTool) Execute(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	var input checkAffordabilityInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	category := model.CategoryOther
	if input.Category != "" {
		category = model.ParseCategory(input.Category)
	}

	out, err := t.uc.CheckAffordability(ctx, account.AffordabilityInput{
		Item:     input.Item,
		Amount:   input.Amount,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("affordability check failed: %w", err)
	}

	if !out.CanAfford {
		return map[string]interface{}{
			"can_afford": false,
			"message":    out.Message,
		}, nil
	}

	return map[string]interface{}{
		"can_afford":          true,
		"recommended_account": out.RecommendedAccount,
		"cashback_rate":       percent(out.CashbackRate),
		"available_after":     dollars(out.AvailableAfter),
		"reason":              out.Reason,
	}, nil
}

var _ agent.Tool = (*CheckAffordabilityTool)(nil)
