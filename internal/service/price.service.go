package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"verdant/internal/repository"
)

/**

behavior - the overlay shadows catalog prices, it never rewrites them.
a refresh fetches every catalog ticker; tickers that fail keep whatever
the overlay last held (or nothing, falling back to the catalog default).

a refresh that completes after a calculation has already been published
notifies the listener so the listener can recompute silently with the
same user parameters.

*/

type PriceService interface {
	// RefreshQuotes fetches live quotes for every catalog ticker and
	// returns how many overlay entries were updated.
	RefreshQuotes(ctx context.Context) int
	// Overlay returns a point-in-time copy of the ticker -> price mapping.
	Overlay() map[string]float64
	// Coverage reports how many of the catalog's tickers have a live price.
	Coverage() (live, total int)
	// SetOnRefreshed registers the listener invoked after a refresh that
	// updated at least one price.
	SetOnRefreshed(fn func())
}

type priceServiceHandler struct {
	QuoteRepository repository.QuoteRepository
	Log             *zap.SugaredLogger

	tickers []string

	mu          sync.Mutex
	overlay     map[string]float64
	onRefreshed func()
}

func NewPriceService(quoteRepository repository.QuoteRepository, tickers []string, log *zap.SugaredLogger) PriceService {
	return &priceServiceHandler{
		QuoteRepository: quoteRepository,
		Log:             log,
		tickers:         tickers,
		overlay:         map[string]float64{},
	}
}

func (h *priceServiceHandler) SetOnRefreshed(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRefreshed = fn
}

func (h *priceServiceHandler) Overlay() map[string]float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]float64, len(h.overlay))
	for ticker, price := range h.overlay {
		out[ticker] = price
	}
	return out
}

func (h *priceServiceHandler) Coverage() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.overlay), len(h.tickers)
}

func (h *priceServiceHandler) RefreshQuotes(ctx context.Context) int {
	numGoroutines := 4

	inputCh := make(chan string, len(h.tickers))

	var wg sync.WaitGroup
	for _, ticker := range h.tickers {
		wg.Add(1)
		inputCh <- ticker
	}
	close(inputCh)

	updated := 0
	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// release the counts for tickers nobody will process
					for range inputCh {
						wg.Done()
					}
					return
				case ticker, ok := <-inputCh:
					if !ok {
						return
					}
					price, err := h.QuoteRepository.GetQuote(ticker)
					if err != nil {
						h.Log.Warnf("skipping quote for %s: %v", ticker, err)
					} else {
						h.mu.Lock()
						h.overlay[ticker] = price
						updated++
						h.mu.Unlock()
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	h.mu.Lock()
	fn := h.onRefreshed
	count := updated
	h.mu.Unlock()

	if count > 0 && fn != nil {
		fn()
	}
	return count
}
