package model

import "strings"

// Category is a spending category used for cashback rates and transactions.
type Category string

const (
	CategoryFuel      Category = "fuel"
	CategoryFood      Category = "food"
	CategoryGroceries Category = "groceries"
	CategoryTravel    Category = "travel"
	CategoryOther     Category = "other"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{CategoryFuel, CategoryFood, CategoryGroceries, CategoryTravel, CategoryOther}
}

// ParseCategory normalizes s to a known category. Unknown values fold into other.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// IsValidCategory reports whether s names a known category exactly.
func IsValidCategory(s string) bool {
	for _, known := range Categories() {
		if Category(s) == known {
			return true
		}
	}
	return false
}

// Account is a credit card owned by the user, stored as JSON under account:<id>.
type Account struct {
	ID       int64                `json:"id"`
	Name     string               `json:"name"`
	Nickname string               `json:"nickname,omitempty"`
	Balance  float64              `json:"balance"`
	Limit    float64              `json:"limit"`
	Cashback map[Category]float64 `json:"cashback"`
}

// Available is the unused credit on the card.
func (a Account) Available() float64 {
	return a.Limit - a.Balance
}

// CashbackRate returns the rate for category, falling back to the other rate.
// A zero rate counts as unset.
func (a Account) CashbackRate(category Category) float64 {
	if rate := a.Cashback[category]; rate != 0 {
		return rate
	}
	return a.Cashback[CategoryOther]
}

// Matches reports whether query is a case-insensitive substring of the name or nickname.
func (a Account) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Name), q) {
		return true
	}
	return a.Nickname != "" && strings.Contains(strings.ToLower(a.Nickname), q)
}
