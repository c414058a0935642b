package tools

import (
	"cashback-advisor/internal/account"
	"cashback-advisor/internal/agent"
)

// RegisterAll registers every account-backed tool on registry.
func RegisterAll(registry *agent.ToolRegistry, uc account.UseCase) {
	registry.Register(NewGetAccountBalanceTool(uc))
	registry.Register(NewCheckAffordabilityTool(uc))
	registry.Register(NewGetMarketCardRecommendationsTool(uc))
	registry.Register(NewGetFinancialSummaryTool(uc))
}
