package usecase

import (
	"context"
	"fmt"

	"cashback-advisor/internal/account"
	"cashback-advisor/internal/model"
)

const noEligibleCardMessage = "You don't have enough available credit on any single card for this purchase."

type bestCard struct {
	name      string
	rate      float64
	available float64
}

// pickBestCard returns the account with the highest cashback rate for category among
// those whose available credit covers amount. Ties keep the earlier account.
func pickBestCard(accounts []account.Account, category model.Category, amount float64) (bestCard, bool) {
	var best bestCard
	found := false
	for _, acc := range accounts {
		available := acc.Available()
		if available < amount {
			continue
		}
		rate := acc.CashbackRate(category)
		if !found || rate > best.rate {
			best = bestCard{name: acc.Name, rate: rate, available: available}
			found = true
		}
	}
	return best, found
}

// CheckAffordability recommends the card to pay with. The available credit is
// computed per call; nothing is reserved for the purchase.
func (uc *implUseCase) CheckAffordability(ctx context.Context, input account.AffordabilityInput) (account.AffordabilityOutput, error) {
	if input.Amount <= 0 {
		return account.AffordabilityOutput{}, account.ErrInvalidAmount
	}
	category := input.Category
	if category == "" {
		category = model.CategoryOther
	}

	accounts, err := uc.repo.ListAccounts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.CheckAffordability: %v", err)
		return account.AffordabilityOutput{}, err
	}

	best, ok := pickBestCard(accounts, category, input.Amount)
	if !ok {
		return account.AffordabilityOutput{CanAfford: false, Message: noEligibleCardMessage}, nil
	}

	rate := formatAmount(best.rate)
	return account.AffordabilityOutput{
		CanAfford:          true,
		RecommendedAccount: best.name,
		CashbackRate:       best.rate,
		AvailableAfter:     best.available - input.Amount,
		Reason: fmt.Sprintf("The %s offers the best cashback (%s%%) for %s and has sufficient credit.",
			best.name, rate, category),
	}, nil
}
