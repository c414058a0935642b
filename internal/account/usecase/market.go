package usecase

import (
	"context"
	"sort"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/model"
)

const (
	topMarketCards = 3

	// Rates used when a category has no market offer or the owned card has no rate.
	fallbackMarketRate  = 2
	fallbackCurrentRate = 1
)

type marketOffer struct {
	name  string
	rates map[model.Category]float64
	note  string
}

// marketCatalog is the reference set of cards the user does not own.
var marketCatalog = []marketOffer{
	{
		name:  "Grocery Max Rewards",
		rates: map[model.Category]float64{model.CategoryGroceries: 6, model.CategoryFuel: 3, model.CategoryOther: 1},
		note:  "6% at supermarkets on the first $6,000 each year",
	},
	{
		name:  "Voyager Travel Card",
		rates: map[model.Category]float64{model.CategoryTravel: 5, model.CategoryFood: 3, model.CategoryOther: 1},
		note:  "5% on flights and hotels booked through the card portal",
	},
	{
		name:  "Fuel Saver Visa",
		rates: map[model.Category]float64{model.CategoryFuel: 4, model.CategoryFood: 2, model.CategoryOther: 1},
		note:  "4% at gas stations, no annual fee",
	},
	{
		name:  "Dining Plus Mastercard",
		rates: map[model.Category]float64{model.CategoryFood: 4, model.CategoryGroceries: 3, model.CategoryOther: 1},
		note:  "4% at restaurants and food delivery",
	},
	{
		name:  "Everyday Flat Card",
		rates: map[model.Category]float64{model.CategoryOther: 2, model.CategoryFuel: 2, model.CategoryFood: 2, model.CategoryGroceries: 2, model.CategoryTravel: 2},
		note:  "2% on everything, no categories to track",
	},
}

// marketCardsFor returns the catalog offers for category ordered by cashback, highest first.
func marketCardsFor(category model.Category) []account.MarketCard {
	var cards []account.MarketCard
	for _, offer := range marketCatalog {
		rate, ok := offer.rates[category]
		if !ok {
			continue
		}
		cards = append(cards, account.MarketCard{Name: offer.name, Cashback: rate, Note: offer.note})
	}
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].Cashback > cards[j].Cashback })
	if len(cards) > topMarketCards {
		cards = cards[:topMarketCards]
	}
	return cards
}

// marketBestRate is the best rate any market card offers for category.
func marketBestRate(category model.Category) float64 {
	cards := marketCardsFor(category)
	if len(cards) == 0 {
		return fallbackMarketRate
	}
	return cards[0].Cashback
}

// MarketCards lists the best market cards for a category.
func (uc *implUseCase) MarketCards(ctx context.Context, category model.Category) (account.MarketCardsOutput, error) {
	if category == "" {
		category = model.CategoryOther
	}
	return account.MarketCardsOutput{
		Category: category,
		Cards:    marketCardsFor(category),
	}, nil
}
