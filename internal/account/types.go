package account

import "cashback-advisor/internal/model"

type (
	Account     = model.Account
	Transaction = model.Transaction
	Category    = model.Category
)

// --- UseCase Inputs ---

type CreateAccountInput struct {
	Name     string
	Nickname string
	Balance  float64
	Limit    float64
	Cashback map[Category]float64
}

type ListTransactionsInput struct {
	AccountID int64 // 0 lists every account
}

type AffordabilityInput struct {
	Item     string
	Amount   float64
	Category Category
}

// --- UseCase Outputs ---

// AffordabilityOutput is either a recommendation (CanAfford) or a Message
// explaining why no single card can take the purchase.
type AffordabilityOutput struct {
	CanAfford          bool
	RecommendedAccount string
	CashbackRate       float64
	AvailableAfter     float64
	Reason             string
	Message            string
}

// MarketCard is a card offered on the market, used for comparisons.
type MarketCard struct {
	Name     string
	Cashback float64
	Note     string
}

type MarketCardsOutput struct {
	Category Category
	Cards    []MarketCard
}

type OwnedCard struct {
	Name    string
	Limit   float64
	Balance float64
}

type FinancialSummaryOutput struct {
	OwnedCards        []OwnedCard
	SpendingBreakdown map[Category]float64
	TopCategory       string // category name or "none"
}

type MerchantSpend struct {
	Merchant string
	Total    float64
}

// SavingsRecommendation names the category where switching cards saves the most.
type SavingsRecommendation struct {
	Category    Category
	Card        string
	Rate        float64
	Savings     float64
	Explanation string
}

type InsightsOutput struct {
	Account          Account
	CategoryTotals   map[Category]float64
	TopMerchants     []MerchantSpend
	PotentialSavings float64
	Recommendation   *SavingsRecommendation
}
