package modelclient

import "time"

// System prompt
const (
	SystemPromptAdvisor = `You are a personal finance assistant that helps the user decide which of their credit cards to use.
You can look up account balances, check whether a purchase is affordable and which card earns the most cashback for it,
compare the user's cards with cards available on the market, and summarize their spending.

Always use the tools to get numbers; never guess balances or rates. Amounts are in US dollars.
Keep answers short and name the recommended card explicitly.`
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - current date]
- Today: %s (%s)
- This week: %s to %s
- This month: %s to %s
Dates are always formatted YYYY-MM-DD.`
)

const (
	DateFormatISO = "2006-01-02"

	DefaultTimeout  = 30 * time.Second
	DefaultTimezone = "UTC"
)
