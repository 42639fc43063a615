package calculator

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"verdant/internal/domain"
)

// Summarize computes the headline stats for a ranked set: the top pick's
// projected value and gain, the mean carbon score of the top three, and the
// best projected gain in the investable list.
func Summarize(investable []domain.ScoredInstrument) (domain.SummaryStats, error) {
	if len(investable) == 0 {
		return domain.SummaryStats{}, fmt.Errorf("%w: no investable instruments to summarize", domain.ErrDivisionUndefined)
	}

	top := investable[0]

	carbonScores := []float64{}
	for i, s := range investable {
		if i >= 3 {
			break
		}
		carbonScores = append(carbonScores, float64(s.CarbonScore))
	}
	avgCarbon, err := stats.Mean(carbonScores)
	if err != nil {
		return domain.SummaryStats{}, fmt.Errorf("failed to compute mean carbon score: %w", err)
	}

	best := investable[0]
	for _, s := range investable[1:] {
		if s.GainPercent > best.GainPercent {
			best = s
		}
	}

	return domain.SummaryStats{
		TopTicker:       top.Ticker,
		TopFutureValue:  top.FutureValue,
		TopGainAbsolute: top.GainAbsolute,
		AvgCarbonTop3:   RoundHalfUp(avgCarbon),
		BestGainTicker:  best.Ticker,
		BestGainPercent: best.GainPercent,
	}, nil
}

// FormatEmissions renders a raw tCO2e quantity the way the product displays
// it: 1.2M t, 920K t, 45 t.
func FormatEmissions(tons float64) string {
	switch {
	case tons >= 1e6:
		return fmt.Sprintf("%.1fM t", tons/1e6)
	case tons >= 1000:
		return fmt.Sprintf("%.0fK t", tons/1000)
	}
	return fmt.Sprintf("%.0f t", tons)
}
