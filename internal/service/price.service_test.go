package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_priceServiceHandler_RefreshQuotes(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Run("partial coverage is tolerated", func(t *testing.T) {
		quotes := stubQuoteRepository{prices: map[string]float64{
			"AAPL": 231.10,
			"NEE":  77.02,
		}}
		svc := NewPriceService(quotes, []string{"AAPL", "NEE", "MSFT", "XOM"}, log)

		updated := svc.RefreshQuotes(context.Background())
		require.Equal(t, 2, updated)

		live, total := svc.Coverage()
		require.Equal(t, 2, live)
		require.Equal(t, 4, total)

		overlay := svc.Overlay()
		require.Equal(t, 231.10, overlay["AAPL"])
		_, ok := overlay["MSFT"]
		require.False(t, ok)
	})

	t.Run("overlay returns a copy", func(t *testing.T) {
		quotes := stubQuoteRepository{prices: map[string]float64{"AAPL": 231.10}}
		svc := NewPriceService(quotes, []string{"AAPL"}, log)
		svc.RefreshQuotes(context.Background())

		overlay := svc.Overlay()
		overlay["AAPL"] = 1
		require.Equal(t, 231.10, svc.Overlay()["AAPL"])
	})

	t.Run("listener fires only when something updated", func(t *testing.T) {
		fired := 0
		svc := NewPriceService(stubQuoteRepository{}, []string{"AAPL"}, log)
		svc.SetOnRefreshed(func() { fired++ })

		svc.RefreshQuotes(context.Background())
		require.Equal(t, 0, fired)

		svc = NewPriceService(stubQuoteRepository{prices: map[string]float64{"AAPL": 231.10}}, []string{"AAPL"}, log)
		svc.SetOnRefreshed(func() { fired++ })
		svc.RefreshQuotes(context.Background())
		require.Equal(t, 1, fired)
	})

	t.Run("a cancelled context does not block the refresh", func(t *testing.T) {
		quotes := stubQuoteRepository{prices: map[string]float64{
			"AAPL": 231.10,
			"MSFT": 415.26,
			"NEE":  77.02,
		}}
		svc := NewPriceService(quotes, []string{"AAPL", "MSFT", "NEE", "XOM", "CVX", "F"}, log)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan int, 1)
		go func() {
			done <- svc.RefreshQuotes(ctx)
		}()

		select {
		case updated := <-done:
			require.LessOrEqual(t, updated, 6)
		case <-time.After(5 * time.Second):
			t.Fatal("RefreshQuotes did not return on a cancelled context")
		}
	})

	t.Run("later quotes supersede earlier ones", func(t *testing.T) {
		quotes := stubQuoteRepository{prices: map[string]float64{"AAPL": 231.10}}
		svc := NewPriceService(quotes, []string{"AAPL"}, log)
		svc.RefreshQuotes(context.Background())

		quotes.prices["AAPL"] = 229.45
		svc.RefreshQuotes(context.Background())
		require.Equal(t, 229.45, svc.Overlay()["AAPL"])
	})
}
