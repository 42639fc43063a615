package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"verdant/internal/domain"
)

// EstimateShares sizes a hypothetical all-in position: whole shares only,
// floored, with the cost of those shares at the given price. A non-positive
// price is rejected.
func EstimateShares(amount, price decimal.Decimal) (domain.ShareEstimate, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.ShareEstimate{}, fmt.Errorf("%w: share estimate requires a positive price, got %s", domain.ErrInvalidParameter, price)
	}
	shares := amount.Div(price).Floor().IntPart()
	cost := decimal.NewFromInt(shares).Mul(price)
	return domain.ShareEstimate{
		Shares:        shares,
		EstimatedCost: cost,
	}, nil
}
