package account

import "context"

// UseCase covers the read-side lookups used by the chat tools and the
// dashboard endpoints, plus account creation.
type UseCase interface {
	// Accounts & transactions
	ListAccounts(ctx context.Context) ([]Account, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (Account, error)
	ListTransactions(ctx context.Context, input ListTransactionsInput) ([]Transaction, error)

	// Decisions
	Balances(ctx context.Context, names []string) (map[string]string, error)
	CheckAffordability(ctx context.Context, input AffordabilityInput) (AffordabilityOutput, error)
	MarketCards(ctx context.Context, category Category) (MarketCardsOutput, error)
	FinancialSummary(ctx context.Context) (FinancialSummaryOutput, error)
	Insights(ctx context.Context, accountID int64) (InsightsOutput, error)
}
