package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"verdant/internal/domain"
)

func summaryFixture(ticker string, carbonScore int, futureValue, gainPct float64) domain.ScoredInstrument {
	return domain.ScoredInstrument{
		InstrumentRecord: domain.InstrumentRecord{Ticker: ticker, CarbonScore: carbonScore},
		FutureValue:      futureValue,
		GainAbsolute:     futureValue - 10000,
		GainPercent:      gainPct,
	}
}

func Test_Summarize(t *testing.T) {
	t.Run("headline stats for a ranked list", func(t *testing.T) {
		investable := []domain.ScoredInstrument{
			summaryFixture("MSFT", 91, 37072.21, 270.72),
			summaryFixture("NVDA", 79, 61917.36, 519.17),
			summaryFixture("LRCX", 87, 40455.58, 304.56),
			summaryFixture("DUK", 71, 17908.48, 79.08),
		}

		summary, err := Summarize(investable)
		require.NoError(t, err)

		require.Equal(t, "MSFT", summary.TopTicker)
		require.Equal(t, 37072.21, summary.TopFutureValue)
		require.Equal(t, 27072.21, summary.TopGainAbsolute)
		// mean(91, 79, 87) = 85.67 rounds to 86
		require.Equal(t, 86, summary.AvgCarbonTop3)
		require.Equal(t, "NVDA", summary.BestGainTicker)
		require.Equal(t, 519.17, summary.BestGainPercent)
	})

	t.Run("fewer than three instruments still averages", func(t *testing.T) {
		investable := []domain.ScoredInstrument{
			summaryFixture("NEE", 87, 12000, 20),
			summaryFixture("LIN", 78, 11000, 10),
		}

		summary, err := Summarize(investable)
		require.NoError(t, err)
		// mean(87, 78) = 82.5 rounds up
		require.Equal(t, 83, summary.AvgCarbonTop3)
	})

	t.Run("empty list is a division error", func(t *testing.T) {
		_, err := Summarize(nil)
		require.ErrorIs(t, err, domain.ErrDivisionUndefined)
	})
}

func Test_FormatEmissions(t *testing.T) {
	require.Equal(t, "1.2M t", FormatEmissions(1_230_000))
	require.Equal(t, "920K t", FormatEmissions(920_000))
	require.Equal(t, "1K t", FormatEmissions(1000))
	require.Equal(t, "45 t", FormatEmissions(45))
	require.Equal(t, "0 t", FormatEmissions(0))
}
