package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"verdant/internal/domain"
)

func Test_NewCatalogRepository(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	t.Run("loads the full catalog in insertion order", func(t *testing.T) {
		records := repo.List()
		require.Len(t, records, 13)
		require.Equal(t, "INTU", records[0].Ticker)
		require.Equal(t, "F", records[len(records)-1].Ticker)
	})

	t.Run("every stored grade matches its score band", func(t *testing.T) {
		for _, rec := range repo.List() {
			require.Equal(t, domain.GradeForScore(rec.CarbonScore), rec.CarbonGrade,
				"ticker %s", rec.Ticker)
		}
	})

	t.Run("every record carries all three return tiers", func(t *testing.T) {
		for _, rec := range repo.List() {
			for _, tier := range []domain.RiskTier{domain.RiskTierLow, domain.RiskTierMedium, domain.RiskTierHigh} {
				rate, err := rec.AnnualReturnPercent(tier)
				require.NoError(t, err)
				require.Greater(t, rate, 0.0)
			}
		}
	})

	t.Run("at least one investable instrument exists", func(t *testing.T) {
		investable := 0
		for _, rec := range repo.List() {
			if rec.Recommendation != domain.RecommendationAvoid {
				investable++
			}
		}
		require.Greater(t, investable, 0)
	})

	t.Run("lookups by ticker", func(t *testing.T) {
		rec, err := repo.Get("MSFT")
		require.NoError(t, err)
		require.Equal(t, "Microsoft Corporation", rec.Name)

		_, err = repo.Get("ZZZZ")
		require.ErrorIs(t, err, domain.ErrInvalidParameter)
	})

	t.Run("tickers align with records", func(t *testing.T) {
		tickers := repo.Tickers()
		records := repo.List()
		require.Len(t, tickers, len(records))
		for i, rec := range records {
			require.Equal(t, rec.Ticker, tickers[i])
		}
	})

	t.Run("list returns a defensive copy", func(t *testing.T) {
		first := repo.List()
		first[0].Price = -1
		require.Equal(t, 631.40, repo.List()[0].Price)
	})
}

func Test_validateRecord(t *testing.T) {
	valid := domain.InstrumentRecord{
		Ticker:      "TEST",
		Price:       50,
		CarbonScore: 85,
		CarbonGrade: domain.CarbonGradeA,
		AnnualReturn: map[domain.RiskTier]float64{
			domain.RiskTierLow:    4,
			domain.RiskTierMedium: 8,
			domain.RiskTierHigh:   12,
		},
		Recommendation: domain.RecommendationBuy,
	}

	t.Run("accepts a consistent record", func(t *testing.T) {
		require.NoError(t, validateRecord(valid))
	})

	t.Run("rejects a grade outside the score band", func(t *testing.T) {
		rec := valid
		rec.CarbonGrade = domain.CarbonGradeC
		require.Error(t, validateRecord(rec))
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		rec := valid
		rec.Price = 0
		require.Error(t, validateRecord(rec))
	})

	t.Run("rejects a missing return tier", func(t *testing.T) {
		rec := valid
		rec.AnnualReturn = map[domain.RiskTier]float64{domain.RiskTierLow: 4}
		require.Error(t, validateRecord(rec))
	})

	t.Run("rejects an unknown recommendation label", func(t *testing.T) {
		rec := valid
		rec.Recommendation = "MAYBE"
		require.Error(t, validateRecord(rec))
	})
}
