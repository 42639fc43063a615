package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"verdant/internal/domain"
)

// Allocate splits totalAmount across the selected instruments in proportion
// to composite score. Percentages are rounded per row and amounts derived
// from the rounded percent; the percents may not sum to exactly 100 and no
// reconciliation pass is applied.
func Allocate(selected []domain.ScoredInstrument, totalAmount decimal.Decimal) ([]domain.AllocationLine, error) {
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: cannot allocate over an empty subset", domain.ErrDivisionUndefined)
	}

	totalComposite := 0
	for _, s := range selected {
		totalComposite += s.CompositeScore
	}
	if totalComposite == 0 {
		return nil, fmt.Errorf("%w: composite scores sum to zero", domain.ErrDivisionUndefined)
	}

	lines := make([]domain.AllocationLine, 0, len(selected))
	for _, s := range selected {
		pct := RoundHalfUp(float64(s.CompositeScore) / float64(totalComposite) * 100)
		amount := totalAmount.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100)).Round(0)
		lines = append(lines, domain.AllocationLine{
			Ticker:            s.Ticker,
			AllocationPercent: pct,
			AllocationAmount:  amount,
		})
	}
	return lines, nil
}
