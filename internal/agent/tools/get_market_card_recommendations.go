package tools

import (
	"context"
	"fmt"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/agent"
	"cashback-advisor/internal/model"
)

// GetMarketCardRecommendationsTool lists market cards the user could apply for.
type GetMarketCardRecommendationsTool struct {
	uc account.UseCase
}

// NewGetMarketCardRecommendationsTool creates a new market comparison tool.
func NewGetMarketCardRecommendationsTool(uc account.UseCase) agent.Tool {
	return &GetMarketCardRecommendationsTool{uc: uc}
}

func (t *GetMarketCardRecommendationsTool) Name() string {
	return "get_market_card_recommendations"
}

func (t *GetMarketCardRecommendationsTool) Description() string {
	return "Get the best credit cards available on the market for a spending category, to compare against the user's own cards"
}

func (t *GetMarketCardRecommendationsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"enum":        categoryEnum(),
				"description": "The spending category to compare",
			},
		},
		"required": []string{"category"},
	}
}

type getMarketCardRecommendationsInput struct {
	Category string `json:"category"`
}

func (t *GetMarketCardRecommendationsTool) Execute(ctx context.Context, params map[string]interface{}) (map[string]interface{}, error) {
	var input getMarketCardRecommendationsInput
	if err := decodeParams(params, &input); err != nil {
		return nil, err
	}

	out, err := t.uc.MarketCards(ctx, model.ParseCategory(input.Category))
	if err != nil {
		return nil, fmt.Errorf("market lookup failed: %w", err)
	}

	cards := make([]map[string]interface{}, 0, len(out.Cards))
	for _, c := range out.Cards {
		cards = append(cards, map[string]interface{}{
			"name":     c.Name,
			"cashback": percent(c.Cashback),
			"note":     c.Note,
		})
	}

	return map[string]interface{}{
		"category":         string(out.Category),
		"top_market_cards": cards,
	}, nil
}

var _ agent.Tool = (*GetMarketCardRecommendationsTool)(nil)
