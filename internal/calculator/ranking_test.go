package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"verdant/internal/domain"
)

func scoredFixture(ticker string, composite int, label domain.RecommendationLabel) domain.ScoredInstrument {
	return domain.ScoredInstrument{
		InstrumentRecord: domain.InstrumentRecord{
			Ticker:         ticker,
			Name:           ticker + " Corp.",
			Recommendation: label,
		},
		CompositeScore: composite,
	}
}

func Test_RankAndPartition(t *testing.T) {
	t.Run("sorts descending by composite score", func(t *testing.T) {
		set := RankAndPartition([]domain.ScoredInstrument{
			scoredFixture("DUK", 40, domain.RecommendationHold),
			scoredFixture("MSFT", 75, domain.RecommendationStrongBuy),
			scoredFixture("NVDA", 62, domain.RecommendationBuy),
		})

		tickers := []string{}
		for _, s := range set.All {
			tickers = append(tickers, s.Ticker)
		}
		require.Equal(t, []string{"MSFT", "NVDA", "DUK"}, tickers)
	})

	t.Run("ties preserve catalog order", func(t *testing.T) {
		input := []domain.ScoredInstrument{
			scoredFixture("AAA", 50, domain.RecommendationBuy),
			scoredFixture("BBB", 50, domain.RecommendationBuy),
			scoredFixture("CCC", 50, domain.RecommendationBuy),
		}
		set := RankAndPartition(input)
		require.Equal(t, "AAA", set.All[0].Ticker)
		require.Equal(t, "BBB", set.All[1].Ticker)
		require.Equal(t, "CCC", set.All[2].Ticker)
	})

	t.Run("repeated ranking of the same input is identical", func(t *testing.T) {
		input := []domain.ScoredInstrument{
			scoredFixture("TSLA", 68, domain.RecommendationBuy),
			scoredFixture("LIN", 68, domain.RecommendationHold),
			scoredFixture("XOM", 20, domain.RecommendationAvoid),
			scoredFixture("NEE", 70, domain.RecommendationStrongBuy),
		}
		first := RankAndPartition(input)
		second := RankAndPartition(input)
		require.Empty(t, cmp.Diff(first.All, second.All))
	})

	t.Run("partition is total and exclusive", func(t *testing.T) {
		input := []domain.ScoredInstrument{
			scoredFixture("MSFT", 75, domain.RecommendationStrongBuy),
			scoredFixture("XOM", 90, domain.RecommendationAvoid),
			scoredFixture("CVX", 18, domain.RecommendationAvoid),
			scoredFixture("DUK", 40, domain.RecommendationHold),
		}
		set := RankAndPartition(input)

		require.Len(t, set.All, 4)
		require.Equal(t, len(set.All), len(set.Investable)+len(set.Excluded))

		seen := map[string]int{}
		for _, s := range set.Investable {
			seen[s.Ticker]++
			require.NotEqual(t, domain.RecommendationAvoid, s.Recommendation)
		}
		for _, s := range set.Excluded {
			seen[s.Ticker]++
			require.Equal(t, domain.RecommendationAvoid, s.Recommendation)
		}
		for ticker, count := range seen {
			require.Equal(t, 1, count, "instrument %s appears in both partitions", ticker)
		}
	})

	t.Run("an AVOID instrument never ranks as investable, even at the top", func(t *testing.T) {
		set := RankAndPartition([]domain.ScoredInstrument{
			scoredFixture("XOM", 99, domain.RecommendationAvoid),
			scoredFixture("F", 30, domain.RecommendationHold),
		})
		require.Equal(t, "XOM", set.All[0].Ticker)
		require.Len(t, set.Investable, 1)
		require.Equal(t, "F", set.Investable[0].Ticker)
	})
}

func Test_TopN(t *testing.T) {
	set := RankAndPartition([]domain.ScoredInstrument{
		scoredFixture("A", 90, domain.RecommendationBuy),
		scoredFixture("B", 80, domain.RecommendationBuy),
		scoredFixture("C", 70, domain.RecommendationBuy),
	})
	require.Len(t, set.TopN(2), 2)
	require.Len(t, set.TopN(5), 3)
	require.Empty(t, set.TopN(0))
}

func Test_FilterByQuery(t *testing.T) {
	list := []domain.ScoredInstrument{
		scoredFixture("MSFT", 75, domain.RecommendationBuy),
		scoredFixture("NEE", 70, domain.RecommendationBuy),
	}

	t.Run("matches ticker case-insensitively", func(t *testing.T) {
		out := FilterByQuery(list, "msf")
		require.Len(t, out, 1)
		require.Equal(t, "MSFT", out[0].Ticker)
	})

	t.Run("matches name substrings", func(t *testing.T) {
		out := FilterByQuery(list, "nee corp")
		require.Len(t, out, 1)
		require.Equal(t, "NEE", out[0].Ticker)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		require.Len(t, FilterByQuery(list, "  "), 2)
	})

	t.Run("no match returns an empty list", func(t *testing.T) {
		require.Empty(t, FilterByQuery(list, "zzz"))
	})
}

func Test_MatchesQuery(t *testing.T) {
	msft := scoredFixture("MSFT", 75, domain.RecommendationBuy)

	require.True(t, MatchesQuery(msft, "msf"))
	require.True(t, MatchesQuery(msft, "MSFT Corp"))
	require.True(t, MatchesQuery(msft, ""))
	require.True(t, MatchesQuery(msft, "   "))
	require.False(t, MatchesQuery(msft, "nee"))
}
